package spectral

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/kovidgoyal/spectral/types"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var _ = fmt.Print

type fileStore interface {
	Create(string) (io.WriteCloser, error)
	Open(string) (io.ReadCloser, error)
}

type localFiles struct{}

func (localFiles) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (localFiles) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }

var files fileStore = localFiles{}

type Format = types.Format

const (
	UNKNOWN = types.UNKNOWN
	JPEG    = types.JPEG
	PNG     = types.PNG
	GIF     = types.GIF
	TIFF    = types.TIFF
	WEBP    = types.WEBP
	BMP     = types.BMP
)

// ErrUnsupportedFormat means the given image format cannot be read or written.
var ErrUnsupportedFormat = errors.New("spectral: unsupported image format")

// Decode reads an image in any of the registered formats from r and lifts
// it into the spectral domain, see FromImage.
func Decode(r io.Reader, opts ...ConvertOption) (*SpectralImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts...)
}

// Open is Decode for the named file.
//
//	img, err := spectral.Open("photo.jpg", spectral.Normalize(spectral.LUMINANCE_NORMALIZATION))
func Open(filename string, opts ...ConvertOption) (*SpectralImage, error) {
	f, err := files.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ans, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return ans, nil
}

// FormatFromExtension maps a file extension, with or without the leading
// dot, to a Format. Matching is case insensitive.
func FormatFromExtension(ext string) (Format, error) {
	if f, ok := types.FormatForExtension(ext); ok {
		return f, nil
	}
	return UNKNOWN, fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
}

// FormatFromFilename is FormatFromExtension for the extension of filename.
func FormatFromFilename(filename string) (Format, error) {
	return FormatFromExtension(filepath.Ext(filename))
}

type encodeConfig struct {
	jpeg       jpeg.Options
	gif        gif.Options
	png        png.Encoder
	sixteenBit bool
	convert    []ConvertOption
}

func encode_config(opts []EncodeOption) encodeConfig {
	cfg := encodeConfig{
		jpeg: jpeg.Options{Quality: 95},
		gif:  gif.Options{NumColors: 256},
	}
	for _, option := range opts {
		option(&cfg)
	}
	return cfg
}

// EncodeOption sets an optional parameter for Encode and Save.
type EncodeOption func(*encodeConfig)

// JPEGQuality sets the JPEG quality, from 1 to 100. Default is 95.
func JPEGQuality(quality int) EncodeOption {
	return func(c *encodeConfig) {
		c.jpeg.Quality = quality
	}
}

// GIFNumColors sets the size of the GIF palette, from 1 to 256. Default is 256.
func GIFNumColors(numColors int) EncodeOption {
	return func(c *encodeConfig) {
		c.gif.NumColors = numColors
	}
}

// PNGCompressionLevel sets the zlib level used for PNG. Default is png.DefaultCompression.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.png.CompressionLevel = level
	}
}

// SixteenBit makes spectral images be written with 16 bits per channel to
// the formats that can store it (PNG and TIFF). Other formats, and images
// that are not spectral, are unaffected.
func SixteenBit() EncodeOption {
	return func(c *encodeConfig) {
		c.sixteenBit = true
	}
}

// WithConvertOptions passes opts on to the conversion of spectral images to
// colors. The image's own Normalization is used unless overridden here.
func WithConvertOptions(opts ...ConvertOption) EncodeOption {
	return func(c *encodeConfig) {
		c.convert = append(c.convert, opts...)
	}
}

func (c *encodeConfig) rasterize(s *SpectralImage, format Format) (image.Image, error) {
	opts := append([]ConvertOption{Normalize(s.Normalization)}, c.convert...)
	if c.sixteenBit && (format == PNG || format == TIFF) {
		return s.ToNRGBA64(opts...)
	}
	return s.ToNRGBA(opts...)
}

// Encode writes img to w in the specified format. Spectral images are
// converted to sRGB first, any other image is written as is.
func Encode(w io.Writer, img image.Image, format Format, opts ...EncodeOption) (err error) {
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	cfg := encode_config(opts)
	if s, ok := img.(*SpectralImage); ok {
		if img, err = cfg.rasterize(s, format); err != nil {
			return err
		}
	}
	switch format {
	case JPEG:
		return jpeg.Encode(w, img, &cfg.jpeg)
	case PNG:
		return cfg.png.Encode(w, img)
	case GIF:
		return gif.Encode(w, img, &cfg.gif)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return bmp.Encode(w, img)
	}
}

// Save writes img to the named file in the format implied by its extension.
// Nothing is created when the format cannot be written.
//
//	err := spectral.Save(img, "out.png", spectral.SixteenBit())
func Save(img image.Image, filename string, opts ...EncodeOption) (err error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot write %s files", ErrUnsupportedFormat, format)
	}
	f, err := files.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = Encode(f, img, format, opts...); err != nil {
		err = fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return
}
