package gstrategy

import (
	"github.com/pkg/errors"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gformula"
)

// Name identifies a strategy in results and reports.
type Name string

const (
	NameIronCondor         Name = "iron_condor"
	NameBullCallSpread     Name = "bull_call_spread"
	NameBearCallSpread     Name = "bear_call_spread"
	NameBullPutSpread      Name = "bull_put_spread"
	NameBearPutSpread      Name = "bear_put_spread"
	NameCoveredCall        Name = "covered_call"
	NameCoveredPut         Name = "covered_put"
	NameProtectiveCall     Name = "protective_call"
	NameProtectivePut      Name = "protective_put"
	NameLongCall           Name = "long_call"
	NameLongPut            Name = "long_put"
	NameShortCall          Name = "short_call"
	NameShortPut           Name = "short_put"
	NameLongCallButterfly  Name = "long_call_butterfly"
	NameLongPutButterfly   Name = "long_put_butterfly"
	NameShortCallButterfly Name = "short_call_butterfly"
	NameShortPutButterfly  Name = "short_put_butterfly"
	NameLongCallCondor     Name = "long_call_condor"
	NameLongPutCondor      Name = "long_put_condor"
	NameShortCallCondor    Name = "short_call_condor"
	NameShortPutCondor     Name = "short_put_condor"
	NameLongCallCalendar   Name = "long_call_calendar"
	NameLongPutCalendar    Name = "long_put_calendar"
	NameShortCallCalendar  Name = "short_call_calendar"
	NameShortPutCalendar   Name = "short_put_calendar"
	NameLongCallDiagonal   Name = "long_call_diagonal"
	NameLongPutDiagonal    Name = "long_put_diagonal"
	NameShortCallDiagonal  Name = "short_call_diagonal"
	NameShortPutDiagonal   Name = "short_put_diagonal"
	NameLongCallRatio      Name = "long_call_ratio"
	NameLongPutRatio       Name = "long_put_ratio"
	NameShortCallRatio     Name = "short_call_ratio"
	NameShortPutRatio      Name = "short_put_ratio"
	NameLongStraddle       Name = "long_straddle"
	NameShortStraddle      Name = "short_straddle"
	NameLongStrangle       Name = "long_strangle"
	NameShortStrangle      Name = "short_strangle"
	NameLongGuts           Name = "long_guts"
	NameShortGuts          Name = "short_guts"

	// priced with the Black-Scholes kernel
	NameVerticalSpread Name = "vertical_spread"
	NameCombination    Name = "combination"
	NameCollar         Name = "collar"
	NameRiskReversal   Name = "risk_reversal"
	NameBoxSpread      Name = "box_spread"
	NameIronButterfly  Name = "iron_butterfly"
	NameBinaryOption   Name = "binary_option"
	NameSyntheticPut   Name = "synthetic_put"
	NameSyntheticCall  Name = "synthetic_call"
	NameStrangle       Name = "strangle"
	NameStraddle       Name = "straddle"
	NameButterfly      Name = "butterfly"
	NameMarriedPut     Name = "married_put"
	NameMarriedCall    Name = "married_call"
)

var allNames = []Name{
	NameIronCondor,
	NameBullCallSpread, NameBearCallSpread, NameBullPutSpread, NameBearPutSpread,
	NameCoveredCall, NameCoveredPut, NameProtectiveCall, NameProtectivePut,
	NameLongCall, NameLongPut, NameShortCall, NameShortPut,
	NameLongCallButterfly, NameLongPutButterfly, NameShortCallButterfly, NameShortPutButterfly,
	NameLongCallCondor, NameLongPutCondor, NameShortCallCondor, NameShortPutCondor,
	NameLongCallCalendar, NameLongPutCalendar, NameShortCallCalendar, NameShortPutCalendar,
	NameLongCallDiagonal, NameLongPutDiagonal, NameShortCallDiagonal, NameShortPutDiagonal,
	NameLongCallRatio, NameLongPutRatio, NameShortCallRatio, NameShortPutRatio,
	NameLongStraddle, NameShortStraddle, NameLongStrangle, NameShortStrangle,
	NameLongGuts, NameShortGuts,
	NameVerticalSpread, NameCombination, NameCollar, NameRiskReversal, NameBoxSpread, NameIronButterfly,
	NameBinaryOption, NameSyntheticPut, NameSyntheticCall,
	NameStrangle, NameStraddle, NameButterfly, NameMarriedPut, NameMarriedCall,
}

var pricedNames = map[Name]struct{}{
	NameVerticalSpread: {}, NameCombination: {}, NameCollar: {}, NameRiskReversal: {},
	NameBoxSpread: {}, NameIronButterfly: {}, NameBinaryOption: {}, NameSyntheticPut: {},
	NameSyntheticCall: {}, NameStrangle: {}, NameStraddle: {}, NameButterfly: {},
	NameMarriedPut: {}, NameMarriedCall: {},
}

// Names returns every strategy in the catalogue, in a stable order.
func Names() []Name {
	names := make([]Name, len(allNames))
	copy(names, allNames)
	return names
}

// Priced reports whether the strategy values its legs with the pricing kernel
// and therefore takes a Market.
func (n Name) Priced() bool {
	_, ok := pricedNames[n]
	return ok
}

func (n Name) String() string {
	return string(n)
}

type Action uint8

const (
	ActionBuy  = Action(1)
	ActionSell = Action(2)
)

func (a Action) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	default:
		return "unknown"
	}
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Leg is one option of a strategy valued by the pricing kernel.
type Leg struct {
	Action  Action              `json:"action"`
	Type    gformula.OptionType `json:"type"`
	Strike  float64             `json:"strike"`
	Premium float64             `json:"premium"`
}

// Result is the maximum profit and maximum loss of a strategy.
// Legs is only set by strategies that price their legs.
type Result struct {
	Strategy  Name  `json:"strategy"`
	MaxProfit Bound `json:"max_profit"`
	MaxLoss   Bound `json:"max_loss"`
	Legs      []Leg `json:"legs,omitempty"`
}

// Mirror returns the opposite position: profit and loss swap sides and flip sign.
func (r Result) Mirror(name Name) Result {
	return Result{Strategy: name, MaxProfit: r.MaxLoss.Neg(), MaxLoss: r.MaxProfit.Neg(), Legs: r.Legs}
}

// Payoff is the profit or loss of a strategy at the given underlying price.
type Payoff struct {
	Strategy   Name    `json:"strategy"`
	Underlying float64 `json:"underlying"`
	Value      float64 `json:"value"`
	Legs       []Leg   `json:"legs,omitempty"`
}

func wrapErr(err error, name Name) error {
	return errors.Wrap(err, string(name))
}
