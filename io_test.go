package spectral

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

type memFile struct {
	bytes.Buffer
}

func (f *memFile) Close() error { return nil }

type memFS map[string]*memFile

func (m memFS) Create(name string) (io.WriteCloser, error) {
	f := &memFile{}
	m[name] = f
	return f, nil
}

func (m memFS) Open(name string) (io.ReadCloser, error) {
	f, ok := m[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(f.Bytes())), nil
}

func use_memfs(t *testing.T) memFS {
	m := memFS{}
	orig := files
	files = m
	t.Cleanup(func() { files = orig })
	return m
}

func gray_ramp() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 4))
	for y := range 4 {
		for x := range 64 {
			v := uint8(y*64 + x)
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func TestFormatFromFilename(t *testing.T) {
	for name, expected := range map[string]Format{
		"a.jpg": JPEG, "a.JPEG": JPEG, "dir/b.png": PNG, "c.gif": GIF, "d.tif": TIFF,
		"e.TIFF": TIFF, "f.webp": WEBP, "g.bmp": BMP,
	} {
		f, err := FormatFromFilename(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, f, name)
	}
	for _, name := range []string{"a", "a.", "a.xcf", "png"} {
		_, err := FormatFromFilename(name)
		require.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
	f, err := FormatFromExtension(".PNG")
	require.NoError(t, err)
	require.Equal(t, "PNG", f.String())
	require.False(t, WEBP.CanEncode())
	require.False(t, UNKNOWN.CanEncode())
	require.True(t, TIFF.CanEncode())
}

func TestSaveOpenRoundtrip(t *testing.T) {
	m := use_memfs(t)
	p, err := FromImage(gray_ramp())
	require.NoError(t, err)
	// lossless formats reproduce the spectra of grays exactly
	for _, name := range []string{"x.png", "x.tif", "x.bmp"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Save(p, name))
			require.NotZero(t, m[name].Len())
			q, err := Open(name)
			require.NoError(t, err)
			require.Equal(t, p.Rect, q.Rect)
			require.Equal(t, WHITE_BALANCED, q.Normalization)
			require.Equal(t, p.Pix, q.Pix)
		})
	}
	for _, name := range []string{"x.jpg", "x.gif"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Save(p, name, JPEGQuality(70), GIFNumColors(16)))
			q, err := Open(name, Normalize(LUMINANCE_NORMALIZATION), Parallelism(1))
			require.NoError(t, err)
			require.Equal(t, p.Rect, q.Rect)
			require.Equal(t, LUMINANCE_NORMALIZATION, q.Normalization)
		})
	}
}

func TestSaveUsesNormalization(t *testing.T) {
	use_memfs(t)
	p, err := FromImage(gray_ramp())
	require.NoError(t, err)
	require.NoError(t, Save(p, "raw.png", WithConvertOptions(Normalize(NO_NORMALIZATION))))
	p.Normalization = NO_NORMALIZATION
	require.NoError(t, Save(p, "field.png"))
	for _, name := range []string{"raw.png", "field.png"} {
		q, err := Open(name)
		require.NoError(t, err)
		// mid gray saturates without normalization
		s := q.SpectrumAt(0, 2)
		white := FromRGB(1, 1, 1)
		assert.Equal(t, white, s, name)
	}
}

func TestEncodePlainImages(t *testing.T) {
	src := gray_ramp()
	for _, format := range []Format{JPEG, PNG, GIF, TIFF, BMP} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, src, format), format.String())
		p, err := Decode(&buf)
		require.NoError(t, err, format.String())
		require.Equal(t, src.Bounds(), p.Bounds(), format.String())
	}
}

func TestSaveSixteenBit(t *testing.T) {
	m := use_memfs(t)
	p, err := FromImage(gray_ramp())
	require.NoError(t, err)
	for _, name := range []string{"deep.png", "deep.tif"} {
		require.NoError(t, Save(p, name, SixteenBit()))
		img, _, err := image.Decode(bytes.NewReader(m[name].Bytes()))
		require.NoError(t, err, name)
		switch img.(type) {
		case *image.RGBA64, *image.NRGBA64:
		default:
			t.Fatalf("%s was not written with 16 bits per channel, decoded as: %T", name, img)
		}
		q, err := Open(name)
		require.NoError(t, err, name)
		for i := range p.Pix {
			// 16 bit quantization may move dark grays by one 8 bit level
			a, b := p.Pix[i].NRGBA(WHITE_BALANCED), q.Pix[i].NRGBA(WHITE_BALANCED)
			require.InDelta(t, a.R, b.R, 1, "%s pixel %d", name, i)
			require.Equal(t, b.R, b.G, "%s pixel %d", name, i)
		}
	}
	// formats without 16 bit support ignore the option
	require.NoError(t, Save(p, "shallow.bmp", SixteenBit()))
	q, err := Open("shallow.bmp")
	require.NoError(t, err)
	require.Equal(t, p.Pix, q.Pix)
}

func TestIOErrors(t *testing.T) {
	m := use_memfs(t)
	p := NewSpectralImage(image.Rect(0, 0, 2, 2))

	err := Encode(io.Discard, p, WEBP)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Contains(t, err.Error(), "WEBP")
	require.ErrorIs(t, Encode(io.Discard, p, UNKNOWN), ErrUnsupportedFormat)
	require.ErrorIs(t, Save(p, "out.xcf"), ErrUnsupportedFormat)
	require.ErrorIs(t, Save(p, "out.webp"), ErrUnsupportedFormat)
	require.Empty(t, m)

	_, err = Open("missing.png")
	require.ErrorIs(t, err, os.ErrNotExist)

	f, _ := files.Create("garbage.png")
	_, _ = f.Write([]byte("not an image"))
	_, err = Open("garbage.png")
	require.ErrorIs(t, err, image.ErrFormat)
	require.Contains(t, err.Error(), "garbage.png")

	_, err = Decode(bytes.NewReader(nil))
	require.True(t, errors.Is(err, image.ErrFormat))
}
