package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kovidgoyal/spectral"
	"github.com/kovidgoyal/spectral/colorconv"
)

var _ = fmt.Print

type conversion struct {
	Normalization string     `json:"normalization"`
	RGB           [3]float64 `json:"rgb"`
	InGamut       bool       `json:"in_gamut"`
	DeltaE        float64    `json:"delta_e76"`
}

type report struct {
	Input       [3]float64   `json:"input"`
	Wavelengths []float64    `json:"wavelengths"`
	Samples     []float64    `json:"samples"`
	XYZ         [3]float64   `json:"xyz"`
	Conversions []conversion `json:"conversions"`
}

func build_report(r, g, b float64) report {
	s := spectral.FromRGB(r, g, b)
	ans := report{Input: [3]float64{r, g, b}, Samples: s[:]}
	for i := range spectral.NumSamples {
		ans.Wavelengths = append(ans.Wavelengths, spectral.Wavelength(i))
	}
	ans.XYZ[0], ans.XYZ[1], ans.XYZ[2] = s.XYZ()
	for _, n := range []spectral.Normalization{spectral.NO_NORMALIZATION, spectral.LUMINANCE_NORMALIZATION, spectral.WHITE_BALANCED} {
		c := s.ToRGB(n)
		ans.Conversions = append(ans.Conversions, conversion{
			Normalization: n.String(),
			RGB:           [3]float64{c.R, c.G, c.B},
			InGamut:       colorconv.InGamut(c.R, c.G, c.B),
			DeltaE:        colorconv.DeltaE76(r, g, b, c.R, c.G, c.B),
		})
	}
	return ans
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) != 4 && len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/sample red green blue [output-prefix]")
		os.Exit(1)
	}
	var rgb [3]float64
	for i, x := range os.Args[1:4] {
		if rgb[i], err = strconv.ParseFloat(x, 64); err != nil {
			err = fmt.Errorf("invalid channel value %#v: %w", x, err)
			return
		}
	}
	b, err := json.MarshalIndent(build_report(rgb[0], rgb[1], rgb[2]), "", "  ")
	if err != nil {
		return
	}
	if len(os.Args) == 4 {
		fmt.Println(string(b))
		return
	}
	output_file := fmt.Sprintf("%s-spectrum.json", os.Args[4])
	if err = os.WriteFile(output_file, b, 0o666); err == nil {
		fmt.Println("Spectrum written to:", output_file)
	}
}
