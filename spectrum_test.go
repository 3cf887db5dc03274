package spectral

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestGrid(t *testing.T) {
	require.Equal(t, 5.0, LambdaInterval)
	require.Equal(t, LambdaStart, Wavelength(0))
	require.Equal(t, 695.0, Wavelength(NumSamples-1))
	for i := 1; i < NumSamples; i++ {
		require.Equal(t, LambdaInterval, Wavelength(i)-Wavelength(i-1))
	}
}

func TestAddThenSampleAtGridPoints(t *testing.T) {
	for i := range NumSamples {
		var s Spectrum
		lambda := Wavelength(i)
		s.AddValueAtLambda(lambda, 2.5)
		require.Equal(t, 2.5, s.SampleAtLambda(lambda), "lambda=%v", lambda)
		require.Equal(t, 2.5, s[i], "lambda=%v", lambda)
		require.Equal(t, 2.5, s.Sum(), "lambda=%v", lambda)
	}
}

func TestDepositSplitsBetweenNeighbours(t *testing.T) {
	var s Spectrum
	s.AddValueAtLambda(401, 10)
	assert.InDelta(t, 8, s[0], 1e-12)
	assert.InDelta(t, 2, s[1], 1e-12)
	// deposits accumulate rather than overwrite
	s.AddValueAtLambda(401, 10)
	assert.InDelta(t, 16, s[0], 1e-12)
	assert.InDelta(t, 4, s[1], 1e-12)
	assert.InDelta(t, 16*0.8+4*0.2, s.SampleAtLambda(401), 1e-12)
}

func TestSampleHalfwayIsAverage(t *testing.T) {
	var s Spectrum
	for i := range s {
		s[i] = float64(i*i) + 0.5
	}
	for i := range NumSamples - 1 {
		lambda := Wavelength(i) + LambdaInterval/2
		assert.InDelta(t, (s[i]+s[i+1])/2, s.SampleAtLambda(lambda), 1e-9, "lambda=%v", lambda)
	}
}

func TestEnergyConservation(t *testing.T) {
	var s Spectrum
	total := 0.0
	for i, lambda := range []float64{400, 400.1, 433.3, 512.7, 555.55, 600, 649.999, 694.2, 695, 699.9} {
		v := float64(i) + 0.25
		before := s.Sum()
		s.AddValueAtLambda(lambda, v)
		total += v
		assert.InDelta(t, v, s.Sum()-before, 1e-12, "lambda=%v", lambda)
	}
	assert.InDelta(t, total, s.Sum(), 1e-12)
}

func TestOutOfRangeWavelengthsAreClamped(t *testing.T) {
	for _, tc := range []struct {
		lambda float64
		index  int
	}{
		{399, 0}, {0, 0}, {-1e9, 0}, {math.Inf(-1), 0},
		{695, NumSamples - 1}, {697.5, NumSamples - 1}, {700, NumSamples - 1}, {750, NumSamples - 1}, {math.Inf(1), NumSamples - 1},
	} {
		var s Spectrum
		s.AddValueAtLambda(tc.lambda, 3)
		var expected Spectrum
		expected[tc.index] = 3
		if diff := cmp.Diff(expected, s); diff != "" {
			t.Fatalf("deposit at %v went to the wrong place: %s", tc.lambda, diff)
		}
		require.Equal(t, 3.0, s.SampleAtLambda(tc.lambda), "lambda=%v", tc.lambda)
	}
}

func TestNaNWavelength(t *testing.T) {
	var s Spectrum
	s.AddValueAtLambda(math.NaN(), 3)
	require.True(t, s.IsBlack())
	s[3] = 1
	require.Equal(t, 0.0, s.SampleAtLambda(math.NaN()))
}

func TestArithmetic(t *testing.T) {
	var a, b Spectrum
	for i := range a {
		a[i] = float64(i)
		b[i] = 0.5
	}
	p := Product(&a, &b)
	c := a
	c.Mul(&b)
	if diff := cmp.Diff(p, c); diff != "" {
		t.Fatalf("Mul and Product disagree: %s", diff)
	}
	d := a
	d.Scale(0.5)
	if diff := cmp.Diff(p, d, approx); diff != "" {
		t.Fatalf("Scale and Mul disagree: %s", diff)
	}
	e := Spectrum{}
	e.Add(&a)
	e.AddScaled(-1, &a)
	require.True(t, e.IsBlack())
	require.Equal(t, float64(NumSamples*(NumSamples-1)/2), a.Sum())
	require.False(t, a.IsBlack())
	require.True(t, (&Spectrum{}).IsBlack())
}

func TestBlockArithmeticMatchesSampleLoops(t *testing.T) {
	a := FromRGB(0.2, 0.5, 0.7)
	b := FromRGB(0.9, 0.1, 0.4)

	var sum, scaled, added, product Spectrum
	total := 0.0
	var x, y, z float64
	for i := range a {
		sum[i] = a[i] + b[i]
		scaled[i] = a[i] * 0.3
		added[i] = b[i] + 0.3*a[i]
		product[i] = a[i] * b[i]
		total += a[i]
		x += a[i] * cieX[i]
		y += a[i] * cieY[i]
		z += a[i] * cieZ[i]
	}

	c := a
	c.Add(&b)
	if diff := cmp.Diff(sum, c, approx); diff != "" {
		t.Fatalf("Add: %s", diff)
	}
	c = a
	c.Scale(0.3)
	if diff := cmp.Diff(scaled, c, approx); diff != "" {
		t.Fatalf("Scale: %s", diff)
	}
	// accumulates onto existing samples, o itself is untouched
	c = b
	orig := a
	c.AddScaled(0.3, &a)
	if diff := cmp.Diff(added, c, approx); diff != "" {
		t.Fatalf("AddScaled: %s", diff)
	}
	require.Equal(t, orig, a)
	if diff := cmp.Diff(product, Product(&a, &b), approx); diff != "" {
		t.Fatalf("Product: %s", diff)
	}
	assert.InDelta(t, total, a.Sum(), 1e-12)
	gx, gy, gz := a.XYZ()
	assert.InDeltaSlice(t, []float64{x, y, z}, []float64{gx, gy, gz}, 1e-12)
}
