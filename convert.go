package spectral

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/kovidgoyal/spectral/colorconv"
	"github.com/kovidgoyal/spectral/srgb"
)

var _ = fmt.Print

// RGBColor is a linear RGB triple with unconstrained range.
type RGBColor struct {
	R, G, B float64
}

func (c RGBColor) String() string {
	return fmt.Sprintf("RGBColor{%.6g %.6g %.6g}", c.R, c.G, c.B)
}

// Normalization selects how the XYZ obtained by integrating a Spectrum is
// scaled before it is converted to RGB.
type Normalization int

const (
	// The plain sum of samples times the matching functions.
	NO_NORMALIZATION Normalization = iota
	// XYZ divided by the integral of the Y matching function, so that a
	// spectrum of 1.0 at every sample has Y == 1.
	LUMINANCE_NORMALIZATION
	// RGB divided per channel by the RGB of the Smits white spectrum, so that
	// FromRGB(v, v, v) converts back to exactly (v, v, v).
	WHITE_BALANCED
)

var normalizationNames = map[Normalization]string{
	NO_NORMALIZATION:        "none",
	LUMINANCE_NORMALIZATION: "luminance",
	WHITE_BALANCED:          "white-balanced",
}

func (n Normalization) String() string {
	if ans, ok := normalizationNames[n]; ok {
		return ans
	}
	return fmt.Sprintf("Normalization(%d)", int(n))
}

var white_balance = sync.OnceValue(func() RGBColor {
	return smits_basis().white.RGB()
})

// RGB converts s to linear RGB by integrating it against the CIE matching
// functions and applying the XYZ to linear sRGB matrix. No normalization or
// clamping is done, see ToRGB for normalized variants.
func (s *Spectrum) RGB() RGBColor {
	r, g, b := colorconv.XYZToLinearRGB(s.XYZ())
	return RGBColor{r, g, b}
}

// ToRGB converts s to linear RGB using the specified normalization. The
// result is never clamped.
func (s *Spectrum) ToRGB(n Normalization) RGBColor {
	switch n {
	case LUMINANCE_NORMALIZATION:
		x, y, z := s.XYZ()
		r, g, b := colorconv.XYZToLinearRGB(x/cieYIntegral, y/cieYIntegral, z/cieYIntegral)
		return RGBColor{r, g, b}
	case WHITE_BALANCED:
		c, w := s.RGB(), white_balance()
		return RGBColor{c.R / w.R, c.G / w.G, c.B / w.B}
	}
	return s.RGB()
}

// FromRGBColor is FromRGB for an RGBColor.
func FromRGBColor(c RGBColor) Spectrum {
	return FromRGB(c.R, c.G, c.B)
}

func unpremultiply(c, a uint32) uint16 {
	return uint16((c * 0xffff) / a)
}

// FromColor converts a color from the rest of the image/color world, taken to
// be sRGB encoded, into a reflectance spectrum. Alpha is ignored apart from
// un-premultiplying; fully transparent colors become black.
func FromColor(c color.Color) Spectrum {
	var r, g, b uint16
	switch q := c.(type) {
	case color.NRGBA64:
		if q.A == 0 {
			return Spectrum{}
		}
		r, g, b = q.R, q.G, q.B
	case color.NRGBA:
		if q.A == 0 {
			return Spectrum{}
		}
		return from_srgb8(q.R, q.G, q.B)
	default:
		r32, g32, b32, a := c.RGBA()
		switch a {
		case 0:
			return Spectrum{}
		case 0xffff:
			r, g, b = uint16(r32), uint16(g32), uint16(b32)
		default:
			r, g, b = unpremultiply(r32, a), unpremultiply(g32, a), unpremultiply(b32, a)
		}
	}
	return FromRGB(float64(srgb.From16Bit(r)), float64(srgb.From16Bit(g)), float64(srgb.From16Bit(b)))
}

func from_srgb8(r, g, b uint8) Spectrum {
	return FromRGB(float64(srgb.From8Bit(r)), float64(srgb.From8Bit(g)), float64(srgb.From8Bit(b)))
}

// NRGBA64 converts s to an opaque sRGB encoded color using the specified
// normalization. Channels outside [0,1] are clipped. The encoding is exact,
// the look-up table is too coarse in the shadows for 16 bit output.
func (s *Spectrum) NRGBA64(n Normalization) color.NRGBA64 {
	c := s.ToRGB(n)
	return color.NRGBA64{R: srgb.ConvertLinearTo16Bit(c.R), G: srgb.ConvertLinearTo16Bit(c.G), B: srgb.ConvertLinearTo16Bit(c.B), A: 0xffff}
}

// NRGBA is the 8 bit version of NRGBA64.
func (s *Spectrum) NRGBA(n Normalization) color.NRGBA {
	c := s.ToRGB(n)
	return color.NRGBA{R: srgb.To8Bit(float32(c.R)), G: srgb.To8Bit(float32(c.G)), B: srgb.To8Bit(float32(c.B)), A: 0xff}
}
