package gformula

import (
	"math"

	"github.com/pkg/errors"
)

func newOptionFunction(typ OptionType, interestRate float64) (optionFunction, error) {
	switch typ {
	case OptionTypePut:
		return newPutFunction(interestRate), nil
	case OptionTypeCall:
		return newCallFunction(interestRate), nil
	default:
		return nil, errors.Wrapf(ErrInvalidOptionType, "%d", uint8(typ))
	}
}

type GreekResult struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

type optionFunction interface {
	Underlying() float64
	SetUnderlying(underlying float64)
	StrikePrice() float64
	SetStrikePrice(strikePrice float64)
	TimeToExpiry() float64
	SetTimeToExpiry(years float64)

	CalDelta(volatility float64) float64
	CalGamma(volatility float64) float64
	CalTheta(volatility float64) float64
	CalVega(volatility float64) float64
	CalRho(volatility float64) float64
	CalGreeks(volatility float64) *GreekResult

	// CalOptionValueBound call: [max(0, S-K*e^(-rT)), S], put: [max(0, K*e^(-rT)-S), K*e^(-rT)]
	CalOptionValueBound() [2]float64
	CalOptionPrice(volatility float64) float64
}

type virtualMethodTable interface {
	vDelta(d1 float64) float64
	vTheta(volatility, expd1, cnd2 float64) float64
	vRho(cnd2 float64) float64
	vCalOptionPrice(volatility float64) float64
	vCalOptionValueBound() [2]float64
}

type baseFunction struct {
	underlying       float64 // underlying price
	strikePrice      float64
	strikeFactor     float64 // strike discounted to today, K*e^(-rT)
	interestRate     float64 // continuously compounded, decimal
	timeToExpiration float64 // years
	timeFactor       float64 // sqrt(T)
	payoffUnit       float64 // discount factor e^(-rT)

	vmt virtualMethodTable
}

func (f *baseFunction) init(interestRate float64) {
	f.interestRate = interestRate
	f.payoffUnit = 1
}

func (f *baseFunction) Underlying() float64 {
	return f.underlying
}

func (f *baseFunction) SetUnderlying(underlying float64) {
	f.underlying = underlying
}

func (f *baseFunction) StrikePrice() float64 {
	return f.strikePrice
}

func (f *baseFunction) SetStrikePrice(strikePrice float64) {
	f.strikePrice = strikePrice
	f.strikeFactor = strikePrice * f.payoffUnit
}

func (f *baseFunction) TimeToExpiry() float64 {
	return f.timeToExpiration
}

func (f *baseFunction) SetTimeToExpiry(years float64) {
	f.timeToExpiration = years
	f.timeFactor = math.Sqrt(years)
	f.payoffUnit = math.Exp(-f.interestRate * years)
	f.strikeFactor = f.strikePrice * f.payoffUnit
}

// DPlusMinus returns d1 and d2.
func (f *baseFunction) DPlusMinus(volatility float64) [2]float64 {
	factor := f.CalFactor(volatility)
	d1 := f.CalD1(volatility, factor)
	return [2]float64{d1, f.CalD2(d1, factor)}
}

// CalD1 N(d1) is the exercise probability under the stock measure.
func (f *baseFunction) CalD1(volatility, factor float64) float64 {
	return (math.Log(f.underlying/f.strikePrice) + (f.interestRate+0.5*volatility*volatility)*f.timeToExpiration) / factor
}

// CalD2 N(d2) is the risk neutral exercise probability.
func (f *baseFunction) CalD2(d1, factor float64) float64 {
	return d1 - factor
}

func (f *baseFunction) CalFactor(volatility float64) float64 {
	return volatility * f.timeFactor
}

func (f *baseFunction) ExpD1(d1 float64) float64 {
	return sndPDF(d1)
}

func (f *baseFunction) Gamma(volatility, expd1 float64) float64 {
	return expd1 / (f.underlying * volatility * f.timeFactor)
}

func (f *baseFunction) Vega(expd1 float64) float64 {
	return kCenti * f.underlying * f.timeFactor * expd1
}

// thetaDecay is the time decay shared by calls and puts, per day.
func (f *baseFunction) thetaDecay(volatility, expd1 float64) float64 {
	return -kYearFactor * 0.5 * f.underlying * volatility / f.timeFactor * expd1
}

func (f *baseFunction) CalDelta(volatility float64) float64 {
	return f.vmt.vDelta(f.CalD1(volatility, f.CalFactor(volatility)))
}

func (f *baseFunction) CalGamma(volatility float64) float64 {
	return f.Gamma(volatility, f.ExpD1(f.CalD1(volatility, f.CalFactor(volatility))))
}

func (f *baseFunction) CalTheta(volatility float64) float64 {
	d := f.DPlusMinus(volatility)
	return f.vmt.vTheta(volatility, f.ExpD1(d[0]), sndCDF(d[1]))
}

func (f *baseFunction) CalVega(volatility float64) float64 {
	return f.Vega(f.ExpD1(f.CalD1(volatility, f.CalFactor(volatility))))
}

func (f *baseFunction) CalRho(volatility float64) float64 {
	d := f.DPlusMinus(volatility)
	return f.vmt.vRho(sndCDF(d[1]))
}

func (f *baseFunction) CalGreeks(volatility float64) *GreekResult {
	d := f.DPlusMinus(volatility)
	expd1 := f.ExpD1(d[0])
	cnd2 := sndCDF(d[1])

	return &GreekResult{
		Delta: f.vmt.vDelta(d[0]),
		Gamma: f.Gamma(volatility, expd1),
		Theta: f.vmt.vTheta(volatility, expd1, cnd2),
		Vega:  f.Vega(expd1),
		Rho:   f.vmt.vRho(cnd2),
	}
}

func (f *baseFunction) CalOptionPrice(volatility float64) float64 {
	return f.vmt.vCalOptionPrice(volatility)
}

func (f *baseFunction) CalOptionValueBound() [2]float64 {
	return f.vmt.vCalOptionValueBound()
}
