package gformula

import "math"

func newCallFunction(interestRate float64) optionFunction {
	f := &callFunction{}
	f.init(interestRate)
	f.vmt = f
	return f
}

type callFunction struct {
	baseFunction
}

func (f *callFunction) vDelta(d1 float64) float64 {
	return sndCDF(d1)
}

func (f *callFunction) vTheta(volatility, expd1, cnd2 float64) float64 {
	return f.thetaDecay(volatility, expd1) - kYearFactor*f.interestRate*f.strikeFactor*cnd2
}

func (f *callFunction) vRho(cnd2 float64) float64 {
	return kCenti * f.strikeFactor * f.timeToExpiration * cnd2
}

// S*N(d1) - K*e^(-rT)*N(d2)
func (f *callFunction) vCalOptionPrice(volatility float64) float64 {
	d := f.DPlusMinus(volatility)
	return f.underlying*sndCDF(d[0]) - f.strikeFactor*sndCDF(d[1])
}

func (f *callFunction) vCalOptionValueBound() [2]float64 {
	return [2]float64{math.Max(f.underlying-f.strikeFactor, 0), f.underlying}
}
