package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var _ = fmt.Print

// The visible range covered by a Spectrum, in nanometres, and the number of
// equally spaced samples it is divided into.
const (
	LambdaStart    = 400.0
	LambdaEnd      = 700.0
	NumSamples     = 60
	LambdaInterval = (LambdaEnd - LambdaStart) / NumSamples
)

// Spectrum is a light or reflectance spectrum stored as NumSamples
// intensities. Sample i is the intensity at Wavelength(i). The zero value is
// the black spectrum.
type Spectrum [NumSamples]float64

// Wavelength returns the wavelength in nanometres of sample i.
func Wavelength(i int) float64 {
	return LambdaStart + float64(i)*LambdaInterval
}

// bracket returns the index of the grid sample at or below lambda and the
// fractional distance of lambda towards the next sample. Wavelengths outside
// the grid are clamped so that left+1 is always a valid index.
func bracket(lambda float64) (left int, t float64) {
	if lambda <= LambdaStart {
		return 0, 0
	}
	if lambda >= Wavelength(NumSamples-1) {
		return NumSamples - 2, 1
	}
	left = int((lambda - LambdaStart) / LambdaInterval)
	t = (lambda - Wavelength(left)) / LambdaInterval
	return
}

// AddValueAtLambda deposits value at the wavelength lambda, splitting it
// between the two nearest samples in proportion to their distance from
// lambda. Deposits accumulate and the total added is always value.
// Wavelengths below LambdaStart deposit onto the first sample, wavelengths at
// or above the last sample onto the last one. A NaN wavelength is ignored.
func (s *Spectrum) AddValueAtLambda(lambda, value float64) {
	if math.IsNaN(lambda) {
		return
	}
	left, t := bracket(lambda)
	s[left] += value * (1 - t)
	s[left+1] += value * t
}

// SampleAtLambda returns the intensity at lambda, linearly interpolated
// between the two nearest samples. Out of range wavelengths are clamped as in
// AddValueAtLambda. A NaN wavelength samples as zero.
func (s *Spectrum) SampleAtLambda(lambda float64) float64 {
	if math.IsNaN(lambda) {
		return 0
	}
	left, t := bracket(lambda)
	return s[left]*(1-t) + s[left+1]*t
}

// Add adds o to s sample by sample.
func (s *Spectrum) Add(o *Spectrum) {
	vecmath.AddBlockInPlace(s[:], o[:])
}

// AddScaled adds k*o to s.
func (s *Spectrum) AddScaled(k float64, o *Spectrum) {
	var scaled Spectrum
	vecmath.ScaleBlock(scaled[:], o[:], k)
	vecmath.AddBlockInPlace(s[:], scaled[:])
}

// Scale multiplies every sample by k.
func (s *Spectrum) Scale(k float64) {
	vecmath.ScaleBlockInPlace(s[:], k)
}

// Mul multiplies s by o sample by sample, for instance to apply a
// reflectance to an illuminant.
func (s *Spectrum) Mul(o *Spectrum) {
	vecmath.MulBlockInPlace(s[:], o[:])
}

// Product returns the sample by sample product of a and b.
func Product(a, b *Spectrum) (ans Spectrum) {
	vecmath.MulBlock(ans[:], a[:], b[:])
	return
}

// Sum returns the total of all samples.
func (s *Spectrum) Sum() float64 {
	return vecmath.Sum(s[:])
}

// IsBlack reports whether every sample is zero.
func (s *Spectrum) IsBlack() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// String formats the samples in wavelength order.
func (s *Spectrum) String() string {
	return fmt.Sprintf("Spectrum%v", s[:])
}
