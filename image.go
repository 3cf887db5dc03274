package spectral

import (
	"fmt"
	"image"
	"image/color"
)

var _ = fmt.Print

// SpectralImage is an in-memory image that stores a Spectrum per pixel. Its
// At method returns color.NRGBA64 values computed using Normalization.
type SpectralImage struct {
	// Pix holds the image's pixels. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []Spectrum
	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
	// Normalization used when converting pixels to colors.
	Normalization Normalization
}

// NewSpectralImage returns a black SpectralImage with the given bounds,
// using WHITE_BALANCED for its colors.
func NewSpectralImage(r image.Rectangle) *SpectralImage {
	return &SpectralImage{
		Pix:           make([]Spectrum, r.Dx()*r.Dy()),
		Stride:        r.Dx(),
		Rect:          r,
		Normalization: WHITE_BALANCED,
	}
}

func (p *SpectralImage) ColorModel() color.Model { return color.NRGBA64Model }

func (p *SpectralImage) Bounds() image.Rectangle { return p.Rect }

func (p *SpectralImage) At(x, y int) color.Color {
	return p.NRGBA64At(x, y)
}

func (p *SpectralImage) NRGBA64At(x, y int) color.NRGBA64 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA64{}
	}
	return p.Pix[p.PixOffset(x, y)].NRGBA64(p.Normalization)
}

// SpectrumAt returns the spectrum at (x, y) or the black spectrum when (x, y)
// is outside the image.
func (p *SpectralImage) SpectrumAt(x, y int) Spectrum {
	if !(image.Point{x, y}.In(p.Rect)) {
		return Spectrum{}
	}
	return p.Pix[p.PixOffset(x, y)]
}

// PixOffset returns the index of the element of Pix that corresponds to
// the pixel at (x, y).
func (p *SpectralImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *SpectralImage) SetSpectrum(x, y int, s *Spectrum) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = *s
}

// Set stores the reflectance spectrum of c, see FromColor.
func (p *SpectralImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = FromColor(c)
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *SpectralImage) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be inside
	// either r1 or r2 if the intersection is empty. Without explicitly checking for
	// this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &SpectralImage{Normalization: p.Normalization}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &SpectralImage{
		Pix:           p.Pix[i:],
		Stride:        p.Stride,
		Rect:          r,
		Normalization: p.Normalization,
	}
}

// Opaque reports whether the image is fully opaque, which it always is.
func (p *SpectralImage) Opaque() bool { return true }
