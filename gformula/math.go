package gformula

import "gonum.org/v1/gonum/stat/distuv"

const (
	kCenti      = 0.01
	kYearFactor = 1.0 / 365
)

// sndCDF standard normal cumulative distribution. erfc based, so it saturates
// to exactly 0 or 1 for large |x| instead of overflowing.
func sndCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// sndPDF standard normal density
func sndPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
