package main

import (
	"fmt"
	"os"

	"github.com/kovidgoyal/spectral"
)

var _ = fmt.Print

func mean_xyz(img *spectral.SpectralImage) (x, y, z float64) {
	var total spectral.Spectrum
	for i := range img.Pix {
		total.Add(&img.Pix[i])
	}
	if n := len(img.Pix); n > 0 {
		total.Scale(1 / float64(n))
	}
	return total.XYZ()
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/demo input-file [output-file]")
		os.Exit(1)
	}
	src := os.Args[1]
	img, err := spectral.Open(src)
	if err != nil {
		return
	}
	x, y, z := mean_xyz(img)
	fmt.Printf("%s: %dx%d mean XYZ: %.4g %.4g %.4g\n", src, img.Rect.Dx(), img.Rect.Dy(), x, y, z)
	dest := src + ".spectral.png"
	if len(os.Args) == 3 {
		dest = os.Args[2]
	}
	if err = spectral.Save(img, dest, spectral.SixteenBit()); err == nil {
		fmt.Println("Converted to spectra and back, saved to:", dest)
	}
}
