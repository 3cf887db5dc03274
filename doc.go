/*
Package spectral converts between RGB colors and sampled visible light
spectra, for use in physically based renderers.

A Spectrum holds NumSamples intensities equally spaced over 400nm to 700nm.
Energy can be deposited and sampled at arbitrary wavelengths with linear
interpolation. FromRGB builds a reflectance spectrum from linear RGB using
Smits' method and Spectrum.RGB integrates a spectrum against the CIE 1931
color matching functions to get back to linear sRGB.

SpectralImage stores a spectrum per pixel and implements image.Image, so
whole images can be lifted into the spectral domain with FromImage or Open,
processed, and written back out with Save.
*/
package spectral

import "fmt"

type SpectralVersion struct {
	Major, Minor, Patch uint
}

func (v SpectralVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v SpectralVersion) Equal(o SpectralVersion) bool {
	return v == o
}

func (v SpectralVersion) After(o SpectralVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v SpectralVersion) Before(o SpectralVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = SpectralVersion{0, 3, 0}
