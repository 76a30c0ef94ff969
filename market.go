package gstrategy

import (
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gformula"
)

// ContractMultiplier is the number of shares one quoted option contract covers.
const ContractMultiplier = 100

// Market is the pricing environment of a priced strategy.
type Market struct {
	Underlying   float64 `json:"underlying"`     // current underlying price
	TimeToExpiry float64 `json:"time_to_expiry"` // years
	RiskFreeRate float64 `json:"risk_free_rate"` // continuously compounded, decimal
	Volatility   float64 `json:"volatility"`     // annualized, decimal
}

// Price returns the Black-Scholes premium of one option on the market's underlying.
func (m Market) Price(typ gformula.OptionType, strike float64) (float64, error) {
	return gformula.Price(typ, m.Underlying, strike, m.TimeToExpiry, m.RiskFreeRate, m.Volatility)
}

func (m Market) leg(action Action, typ gformula.OptionType, strike float64) (Leg, error) {
	premium, err := m.Price(typ, strike)
	if err != nil {
		return Leg{}, err
	}
	return Leg{Action: action, Type: typ, Strike: strike, Premium: premium}, nil
}

type options struct {
	buyType    gformula.OptionType
	sellType   gformula.OptionType
	optionType gformula.OptionType
	payout     float64
}

func newOptions(opts []Option) *options {
	o := &options{
		buyType:    gformula.OptionTypeCall,
		sellType:   gformula.OptionTypeCall,
		optionType: gformula.OptionTypeCall,
		payout:     100,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

type Option func(o *options)

// WithBuyType sets the type of the bought leg of VerticalSpread, default call.
func WithBuyType(typ gformula.OptionType) Option {
	return func(o *options) {
		o.buyType = typ
	}
}

// WithSellType sets the type of the sold leg of VerticalSpread, default call.
func WithSellType(typ gformula.OptionType) Option {
	return func(o *options) {
		o.sellType = typ
	}
}

// WithOptionType sets the type of BinaryOption, default call.
func WithOptionType(typ gformula.OptionType) Option {
	return func(o *options) {
		o.optionType = typ
	}
}

// WithPayout sets the in-the-money payout of BinaryOption, default 100.
func WithPayout(payout float64) Option {
	return func(o *options) {
		o.payout = payout
	}
}
