package spectral

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ = fmt.Print

func constant_spectrum(v float64) (ans Spectrum) {
	for i := range ans {
		ans[i] = v
	}
	return
}

func TestXYZOfConstantSpectrumIsTableSums(t *testing.T) {
	s := constant_spectrum(1)
	x, y, z := s.XYZ()
	assert.InDelta(t, cieX.Sum(), x, 1e-12)
	assert.InDelta(t, cieY.Sum(), y, 1e-12)
	assert.InDelta(t, cieZ.Sum(), z, 1e-12)
	assert.InDelta(t, 21.31706981, x, 1e-9)
	assert.InDelta(t, 21.3568192, y, 1e-9)
	assert.InDelta(t, 21.29828020799, z, 1e-9)
	assert.InDelta(t, 21.3568192, cieYIntegral, 1e-9)
}

func TestGoldenRegression(t *testing.T) {
	const eps = 1e-9
	ones := constant_spectrum(1)
	for _, tc := range []struct {
		name     string
		s        Spectrum
		n        Normalization
		expected RGBColor
	}{
		{"black", Spectrum{}, NO_NORMALIZATION, RGBColor{}},
		{"ones", ones, NO_NORMALIZATION, RGBColor{25.630944304068688, 20.288574124389072, 19.34744878575139}},
		{"ones luminance", ones, LUMINANCE_NORMALIZATION, RGBColor{1.20012929191575, 0.9499810779120644, 0.9059143407343819}},
		{"smits white", smits_basis().white, NO_NORMALIZATION, RGBColor{27.238453412779204, 21.543591120286276, 20.554511477985873}},
		{"smits white balanced", smits_basis().white, WHITE_BALANCED, RGBColor{1, 1, 1}},
	} {
		got := tc.s.ToRGB(tc.n)
		if !nearly_equal(got, tc.expected, eps) {
			t.Fatalf("golden mismatch for %s:\n  expected %v\n  got      %v\n\nIf this change is intentional, update the table of test cases", tc.name, tc.expected, got)
		}
	}
	assert.Equal(t, ones.ToRGB(NO_NORMALIZATION), ones.RGB())
}

func TestConversionIsLinear(t *testing.T) {
	s := FromRGB(0.2, 0.5, 0.7)
	c := s.RGB()
	s.Scale(3)
	c3 := s.RGB()
	assert.InDeltaSlice(t, []float64{3 * c.R, 3 * c.G, 3 * c.B}, []float64{c3.R, c3.G, c3.B}, 1e-9)
}
