package spectral

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidSampleData means the wavelength/value pairs passed to FromSamples
// cannot describe a spectrum.
var ErrInvalidSampleData = errors.New("spectral: invalid sample data")

func validate_samples(lambdas, values []float64) error {
	if len(lambdas) != len(values) {
		return fmt.Errorf("%w: %d wavelengths but %d values", ErrInvalidSampleData, len(lambdas), len(values))
	}
	if len(lambdas) < 2 {
		return fmt.Errorf("%w: need at least two samples, got %d", ErrInvalidSampleData, len(lambdas))
	}
	for i, l := range lambdas {
		if math.IsNaN(l) {
			return fmt.Errorf("%w: wavelength at index %d is NaN", ErrInvalidSampleData, i)
		}
		if i > 0 && !(l > lambdas[i-1]) {
			return fmt.Errorf("%w: wavelengths must be strictly increasing at index %d (%g after %g)", ErrInvalidSampleData, i, l, lambdas[i-1])
		}
	}
	return nil
}

// resample interpolates the piecewise linear function through (lambdas,
// values) at every grid wavelength. The input grid need not be uniform, each
// segment uses its own spacing. Grid wavelengths outside the input range take
// the value of the nearest end point. Input must already be validated.
func resample(lambdas, values []float64) (ans Spectrum) {
	last := len(lambdas) - 1
	for i := range ans {
		lambda := Wavelength(i)
		switch {
		case lambda <= lambdas[0]:
			ans[i] = values[0]
		case lambda >= lambdas[last]:
			ans[i] = values[last]
		default:
			// first input wavelength >= lambda, the one before it brackets from the left
			right := sort.SearchFloat64s(lambdas, lambda)
			left := right - 1
			t := (lambda - lambdas[left]) / (lambdas[right] - lambdas[left])
			ans[i] = values[left]*(1-t) + values[right]*t
		}
	}
	return
}

// FromSamples builds a Spectrum from an arbitrary set of wavelength/value
// pairs, sorted by increasing wavelength, by linear interpolation at each
// grid wavelength.
func FromSamples(lambdas, values []float64) (Spectrum, error) {
	if err := validate_samples(lambdas, values); err != nil {
		return Spectrum{}, err
	}
	return resample(lambdas, values), nil
}
