// Package types holds the small value types shared between spectral and
// its tools.
package types

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Format is an image file format.
type Format int

const (
	UNKNOWN Format = iota
	JPEG
	PNG
	GIF
	TIFF
	WEBP
	BMP
)

var FormatExts = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
	"bmp":  BMP,
}

var formatNames = [...]string{"UNKNOWN", "JPEG", "PNG", "GIF", "TIFF", "WEBP", "BMP"}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatForExtension looks up ext, with or without its leading dot, ignoring case.
func FormatForExtension(ext string) (Format, bool) {
	f, ok := FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return f, ok
}

// CanEncode reports whether images can be written in this format. WEBP is
// supported for decoding only.
func (f Format) CanEncode() bool {
	switch f {
	case JPEG, PNG, GIF, TIFF, BMP:
		return true
	}
	return false
}
