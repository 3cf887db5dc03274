package spectral

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

type convertConfig struct {
	normalization Normalization
	parallelism   int
}

var defaultConvertConfig = convertConfig{
	normalization: WHITE_BALANCED,
	parallelism:   0,
}

// ConvertOption sets an optional parameter for the functions that convert
// between images and spectral images.
type ConvertOption func(*convertConfig)

// Normalize returns a ConvertOption that sets the normalization used when
// turning spectra back into colors. Defaults to WHITE_BALANCED so that
// converting an image to spectra and back is close to lossless.
func Normalize(n Normalization) ConvertOption {
	return func(c *convertConfig) {
		c.normalization = n
	}
}

// Parallelism returns a ConvertOption that sets the number of goroutines
// used for conversion. Zero, the default, means use all CPUs.
func Parallelism(n int) ConvertOption {
	return func(c *convertConfig) {
		c.parallelism = max(0, n)
	}
}

func convert_config(opts []ConvertOption) convertConfig {
	cfg := defaultConvertConfig
	for _, option := range opts {
		option(&cfg)
	}
	return cfg
}

// FromImage converts every pixel of img into a reflectance spectrum, see
// FromColor. The returned image has its origin at img.Bounds().Min.
func FromImage(img image.Image, opts ...ConvertOption) (ans *SpectralImage, err error) {
	cfg := convert_config(opts)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = NewSpectralImage(b)
	ans.Normalization = cfg.normalization
	if width == 0 || height == 0 {
		return ans, nil
	}
	var f func(start, limit int)
	switch src := img.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[4*(width-1)]
				dest := ans.Pix[y*ans.Stride : (y+1)*ans.Stride]
				for x := range dest {
					if row[3] != 0 {
						dest[x] = from_srgb8(row[0], row[1], row[2])
					}
					row = row[4:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[4*(width-1)]
				dest := ans.Pix[y*ans.Stride : (y+1)*ans.Stride]
				for x := range dest {
					if a := row[3]; a == 0xff {
						dest[x] = from_srgb8(row[0], row[1], row[2])
					} else if a != 0 {
						dest[x] = FromColor(color.RGBA{R: row[0], G: row[1], B: row[2], A: a})
					}
					row = row[4:]
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				dest := ans.Pix[y*ans.Stride : (y+1)*ans.Stride]
				for x := range dest {
					dest[x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
				}
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(cfg.parallelism, f, 0, height); err != nil {
		return nil, fmt.Errorf("failed to convert image to spectra: %w", err)
	}
	return
}

// rows runs f over every row of p, spread across goroutines.
func (p *SpectralImage) rows(parallelism int, f func(y int, row []Spectrum)) error {
	if p.Rect.Empty() {
		return nil
	}
	width := p.Rect.Dx()
	return parallel.Run_in_parallel_over_range(parallelism, func(start, limit int) {
		for y := start; y < limit; y++ {
			f(y, p.Pix[y*p.Stride:y*p.Stride+width])
		}
	}, 0, p.Rect.Dy())
}

// ToNRGBA converts the spectral image to an 8 bit sRGB image using the
// normalization from opts. Note that the Normalization field of p is not used,
// pass Normalize(p.Normalization) to get the same colors as At.
func (p *SpectralImage) ToNRGBA(opts ...ConvertOption) (*image.NRGBA, error) {
	cfg := convert_config(opts)
	ans := image.NewNRGBA(p.Rect)
	err := p.rows(cfg.parallelism, func(y int, src []Spectrum) {
		row := ans.Pix[y*ans.Stride:]
		for x := range src {
			c := src[x].NRGBA(cfg.normalization)
			s := row[0:4:4]
			s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
			row = row[4:]
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert spectra to image: %w", err)
	}
	return ans, nil
}

// ToNRGBA64 is the 16 bit version of ToNRGBA.
func (p *SpectralImage) ToNRGBA64(opts ...ConvertOption) (*image.NRGBA64, error) {
	cfg := convert_config(opts)
	ans := image.NewNRGBA64(p.Rect)
	err := p.rows(cfg.parallelism, func(y int, src []Spectrum) {
		row := ans.Pix[y*ans.Stride:]
		for x := range src {
			c := src[x].NRGBA64(cfg.normalization)
			s := row[0:8:8]
			s[0], s[1] = uint8(c.R>>8), uint8(c.R)
			s[2], s[3] = uint8(c.G>>8), uint8(c.G)
			s[4], s[5] = uint8(c.B>>8), uint8(c.B)
			s[6], s[7] = 0xff, 0xff
			row = row[8:]
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert spectra to image: %w", err)
	}
	return ans, nil
}

// Illuminate multiplies every pixel of p by illuminant, in place. Only the
// Parallelism option is used.
func (p *SpectralImage) Illuminate(illuminant *Spectrum, opts ...ConvertOption) error {
	cfg := convert_config(opts)
	err := p.rows(cfg.parallelism, func(_ int, row []Spectrum) {
		for x := range row {
			row[x].Mul(illuminant)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to illuminate image: %w", err)
	}
	return nil
}
