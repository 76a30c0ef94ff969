package gformula

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidMarketParameter is returned when a pricing input is outside the model domain.
	ErrInvalidMarketParameter = errors.New("invalid market parameter")
	// ErrInvalidOptionType is returned for an option type other than call or put.
	ErrInvalidOptionType = errors.New("invalid option type")
)

type OptionType uint8

const (
	OptionTypeCall = OptionType(1)
	OptionTypePut  = OptionType(2)
)

// ParseOptionType parses "call" or "put", case-insensitively.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return OptionTypeCall, nil
	case "put":
		return OptionTypePut, nil
	default:
		return 0, errors.Wrapf(ErrInvalidOptionType, "%q", s)
	}
}

func (t OptionType) String() string {
	switch t {
	case OptionTypeCall:
		return "call"
	case OptionTypePut:
		return "put"
	default:
		return "unknown"
	}
}

func (t OptionType) Valid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

func (t OptionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(ErrInvalidOptionType, "%d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *OptionType) UnmarshalText(text []byte) error {
	v, err := ParseOptionType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// CallPrice returns the Black-Scholes price of a European call.
func CallPrice(spot, strike, timeToExpiry, riskFreeRate, volatility float64) (float64, error) {
	return Price(OptionTypeCall, spot, strike, timeToExpiry, riskFreeRate, volatility)
}

// PutPrice returns the Black-Scholes price of a European put.
func PutPrice(spot, strike, timeToExpiry, riskFreeRate, volatility float64) (float64, error) {
	return Price(OptionTypePut, spot, strike, timeToExpiry, riskFreeRate, volatility)
}

// Price returns the Black-Scholes price of a European option of the given type.
// spot, strike, timeToExpiry and volatility must be positive and finite, riskFreeRate finite.
func Price(typ OptionType, spot, strike, timeToExpiry, riskFreeRate, volatility float64) (float64, error) {
	bsm, err := NewBSModel(typ, riskFreeRate)
	if err != nil {
		return 0, err
	}
	if err := bsm.Setup(spot, strike, timeToExpiry); err != nil {
		return 0, err
	}

	return bsm.CalOptionValue(volatility)
}

func NewBSModel(typ OptionType, interestRate float64) (*BSModel, error) {
	if err := checkFinite(interestRate, "risk free rate"); err != nil {
		return nil, err
	}
	f, err := newOptionFunction(typ, interestRate)
	if err != nil {
		return nil, err
	}
	return &BSModel{typ: typ, function: f}, nil
}

/**
 * BSModel is the entry point for option valuation under Black-Scholes:
 *   1. theoretical option price
 *   2. greeks (delta/gamma/theta/vega/rho)
 *   3. no-arbitrage price bounds
 *
 * The model is built from time to expiry, underlying price, strike price,
 * continuously compounded risk free rate and volatility. Underlying, strike and
 * time to expiry are set on the model; volatility is passed per calculation.
 * A BSModel is not safe for concurrent mutation.
 */
type BSModel struct {
	typ      OptionType
	function optionFunction
}

func (bsm *BSModel) OptionType() OptionType {
	return bsm.typ
}

func (bsm *BSModel) Underlying() float64 {
	return bsm.function.Underlying()
}

func (bsm *BSModel) SetUnderlying(underlying float64) error {
	if err := checkPositive(underlying, "underlying"); err != nil {
		return err
	}
	bsm.function.SetUnderlying(underlying)
	return nil
}

func (bsm *BSModel) StrikePrice() float64 {
	return bsm.function.StrikePrice()
}

func (bsm *BSModel) SetStrikePrice(strikePrice float64) error {
	if err := checkPositive(strikePrice, "strike price"); err != nil {
		return err
	}
	bsm.function.SetStrikePrice(strikePrice)
	return nil
}

func (bsm *BSModel) TimeToExpiry() float64 {
	return bsm.function.TimeToExpiry()
}

// SetTimeToExpiry sets the time to expiry in years.
func (bsm *BSModel) SetTimeToExpiry(years float64) error {
	if err := checkPositive(years, "time to expiry"); err != nil {
		return err
	}
	bsm.function.SetTimeToExpiry(years)
	return nil
}

// Setup sets underlying, strike and time to expiry, stopping at the first invalid input.
func (bsm *BSModel) Setup(underlying, strikePrice, timeToExpiry float64) error {
	if err := bsm.SetUnderlying(underlying); err != nil {
		return err
	}
	if err := bsm.SetStrikePrice(strikePrice); err != nil {
		return err
	}
	return bsm.SetTimeToExpiry(timeToExpiry)
}

// CalOptionValue returns the theoretical option price. Requires Setup.
func (bsm *BSModel) CalOptionValue(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return math.Max(bsm.function.CalOptionPrice(volatility), 0.0), nil
}

// CalOptionValueBound returns the [min, max] price a European option can take without arbitrage.
func (bsm *BSModel) CalOptionValueBound() [2]float64 {
	return bsm.function.CalOptionValueBound()
}

// Delta is in (0,1) for calls and (-1,0) for puts.
func (bsm *BSModel) Delta(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return bsm.function.CalDelta(volatility), nil
}

func (bsm *BSModel) Gamma(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return bsm.function.CalGamma(volatility), nil
}

// Theta is the price change per calendar day, usually negative.
func (bsm *BSModel) Theta(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return bsm.function.CalTheta(volatility), nil
}

// Vega is the price change for a one point (1%) move in volatility.
func (bsm *BSModel) Vega(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return bsm.function.CalVega(volatility), nil
}

// Rho is the price change for a one point (1%) move in the risk free rate.
func (bsm *BSModel) Rho(volatility float64) (float64, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return 0, err
	}
	return bsm.function.CalRho(volatility), nil
}

func (bsm *BSModel) Greeks(volatility float64) (*GreekResult, error) {
	if err := bsm.checkReady(volatility); err != nil {
		return nil, err
	}
	return bsm.function.CalGreeks(volatility), nil
}

func (bsm *BSModel) checkReady(volatility float64) error {
	if err := checkPositive(volatility, "volatility"); err != nil {
		return err
	}
	// zero values mean Setup was never called
	if bsm.function.Underlying() <= 0 || bsm.function.StrikePrice() <= 0 || bsm.function.TimeToExpiry() <= 0 {
		return errors.Wrap(ErrInvalidMarketParameter, "model is not set up")
	}
	return nil
}

func checkPositive(x float64, name string) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return errors.Wrapf(ErrInvalidMarketParameter, "%s must be positive and finite, got %v", name, x)
	}
	return nil
}

func checkFinite(x float64, name string) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.Wrapf(ErrInvalidMarketParameter, "%s must be finite, got %v", name, x)
	}
	return nil
}
