package gformula

import (
	"math"
	"testing"
)

func TestCND(t *testing.T) {
	v := sndCDF(0.234)
	t.Log("cdn:", v)
	assertFloatEqual(t, 0.5925075106684191, v, 1e-12)
	assertFloatEqual(t, 0.5, sndCDF(0), 1e-15)
	assertFloatEqual(t, 1-sndCDF(1.3), sndCDF(-1.3), 1e-15)

	assertTrue(t, sndCDF(-40) == 0)
	assertTrue(t, sndCDF(40) == 1)
	assertTrue(t, !math.IsNaN(sndCDF(-1e308)))

	assertFloatEqual(t, 1/math.Sqrt(2*math.Pi), sndPDF(0), 1e-15)
}
