package srgb

import (
	"math"
	"sync"

	"github.com/kovidgoyal/spectral/colorconv"
)

// Number of entries in the tables indexed by a linear value. Linear values
// are quantized to linearSteps+1 levels before the lookup.
const linearSteps = 1<<12 - 1

func build_encoded_to_linear(max_encoded int) []float32 {
	ans := make([]float32, max_encoded+1)
	for i := range ans {
		ans[i] = float32(colorconv.SRGBCompToLinear(float64(i) / float64(max_encoded)))
	}
	return ans
}

func encode(v float64, max_encoded int) int {
	return int(math.Round(colorconv.LinearToSRGBComp(clamp01(v)) * float64(max_encoded)))
}

var linearToEncoded8LUT = sync.OnceValue(func() []uint8 {
	ans := make([]uint8, linearSteps+1)
	for i := range ans {
		ans[i] = uint8(encode(float64(i)/linearSteps, math.MaxUint8))
	}
	return ans
})
var encoded8ToLinearLUT = sync.OnceValue(func() []float32 { return build_encoded_to_linear(math.MaxUint8) })
var linearToEncoded16LUT = sync.OnceValue(func() []uint16 {
	ans := make([]uint16, math.MaxUint16+1)
	for i := range ans {
		ans[i] = uint16(encode(float64(i)/math.MaxUint16, math.MaxUint16))
	}
	return ans
})
var encoded16ToLinearLUT = sync.OnceValue(func() []float32 { return build_encoded_to_linear(math.MaxUint16) })

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

// From8Bit converts an 8-bit sRGB encoded value to a normalised linear value
// between 0.0 and 1.0.
//
// This implementation uses a fast look-up table without sacrificing accuracy.
func From8Bit(v uint8) float32 {
	return encoded8ToLinearLUT()[v]
}

// From16Bit converts a 16-bit sRGB encoded value to a normalised linear value
// between 0.0 and 1.0.
//
// This implementation uses a fast look-up table without sacrificing accuracy.
func From16Bit(v uint16) float32 {
	return encoded16ToLinearLUT()[v]
}

// To8Bit converts a linear value to an 8-bit sRGB encoded value, clipping the
// linear value to between 0.0 and 1.0. NaN encodes as 0.
//
// This implementation uses a fast look-up table and is approximate. For more
// accuracy, see ConvertLinearTo8Bit.
func To8Bit(v float32) uint8 {
	if v != v {
		return 0
	}
	return linearToEncoded8LUT()[int(math.Round(clamp01(float64(v))*linearSteps))]
}

// To16Bit converts a linear value to a 16-bit sRGB encoded value, clipping the
// linear value to between 0.0 and 1.0. NaN encodes as 0.
//
// This implementation uses a fast look-up table and is approximate. For more
// accuracy, see ConvertLinearTo16Bit.
func To16Bit(v float32) uint16 {
	if v != v {
		return 0
	}
	return linearToEncoded16LUT()[int(math.Round(clamp01(float64(v))*math.MaxUint16))]
}

// ConvertLinearTo8Bit converts a linear value to an 8-bit sRGB encoded value
// without a look-up table, clipping the linear value to between 0.0 and 1.0.
func ConvertLinearTo8Bit(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(encode(v, math.MaxUint8))
}

// ConvertLinearTo16Bit converts a linear value to a 16-bit sRGB encoded value
// without a look-up table, clipping the linear value to between 0.0 and 1.0.
func ConvertLinearTo16Bit(v float64) uint16 {
	if math.IsNaN(v) {
		return 0
	}
	return uint16(encode(v, math.MaxUint16))
}
