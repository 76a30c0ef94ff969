package gformula

import "math"

func newPutFunction(interestRate float64) optionFunction {
	f := &putFunction{}
	f.init(interestRate)
	f.vmt = f
	return f
}

type putFunction struct {
	baseFunction
}

func (f *putFunction) vDelta(d1 float64) float64 {
	return sndCDF(d1) - 1
}

// cnd2 is N(d2); the put leg uses N(-d2) = 1 - N(d2)
func (f *putFunction) vTheta(volatility, expd1, cnd2 float64) float64 {
	return f.thetaDecay(volatility, expd1) + kYearFactor*f.interestRate*f.strikeFactor*(1-cnd2)
}

func (f *putFunction) vRho(cnd2 float64) float64 {
	return kCenti * f.strikeFactor * f.timeToExpiration * (cnd2 - 1)
}

// K*e^(-rT)*N(-d2) - S*N(-d1)
func (f *putFunction) vCalOptionPrice(volatility float64) float64 {
	d := f.DPlusMinus(volatility)
	return f.strikeFactor*sndCDF(-d[1]) - f.underlying*sndCDF(-d[0])
}

func (f *putFunction) vCalOptionValueBound() [2]float64 {
	return [2]float64{math.Max(f.strikeFactor-f.underlying, 0), f.strikeFactor}
}
