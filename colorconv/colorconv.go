package colorconv

import (
	"math"
)

// This package converts between CIE XYZ and linear/companded sRGB (both
// relative to D65) and provides CIELAB relative to D65 for measuring colour
// differences.
//
// Notes:
// - The XYZ to linear sRGB conversion is a plain matrix multiply. The result
//   is not clamped and may be negative or greater than one for colours
//   outside the sRGB gamut.
// - Only the companded (gamma encoded) helpers clamp, since encoded values
//   outside [0,1] have no meaning.

type Vec3 [3]float64
type Mat3 [3][3]float64

// Reference white (CIE XYZ) for D65 normalized so Y = 1.0, matching the
// primaries the matrices below were derived from.
var whiteD65 = Vec3{0.950456, 1.00000, 1.088754}

// linear sRGB from CIE XYZ (D65) and its inverse, see
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
var (
	srgbFromXYZ = Mat3{
		{3.240479, -1.537150, -0.498535},
		{-0.969256, 1.875991, 0.041556},
		{0.055648, -0.204043, 1.057311},
	}
	xyzFromSRGB = Mat3{
		{0.412453, 0.357580, 0.180423},
		{0.212671, 0.715160, 0.072169},
		{0.019334, 0.119193, 0.950227},
	}
)

// Public API

// WhiteD65 returns the XYZ of the reference white used by this package.
func WhiteD65() Vec3 { return whiteD65 }

// XYZToLinearRGB converts XYZ (D65) to linear sRGB. The output may be outside
// the [0,1] range.
func XYZToLinearRGB(X, Y, Z float64) (r, g, b float64) {
	return mulMat3Vec(srgbFromXYZ, Vec3{X, Y, Z})
}

// LinearRGBToXYZ converts linear sRGB to XYZ (D65).
func LinearRGBToXYZ(r, g, b float64) (X, Y, Z float64) {
	return mulMat3Vec(xyzFromSRGB, Vec3{r, g, b})
}

// XYZToSRGB converts XYZ (D65) to gamma-corrected sRGB values. The outputs
// are clamped to [0,1].
func XYZToSRGB(X, Y, Z float64) (r, g, b float64) {
	rl, gl, bl := XYZToLinearRGB(X, Y, Z)
	r = clamp01(LinearToSRGBComp(rl))
	g = clamp01(LinearToSRGBComp(gl))
	b = clamp01(LinearToSRGBComp(bl))
	return
}

// If you need the non-clamped gamma-corrected values (for checking out-of-gamut)
// you can use this helper which only compands but doesn't clamp above.
func XYZToSRGBNoClamp(X, Y, Z float64) (r, g, b float64) {
	rl, gl, bl := XYZToLinearRGB(X, Y, Z)
	r = LinearToSRGBComp(rl)
	g = LinearToSRGBComp(gl)
	b = LinearToSRGBComp(bl)
	return
}

// LinearToSRGBComp applies the sRGB (gamma) companding function to a linear component.
func LinearToSRGBComp(c float64) float64 {
	// clip negative values at this stage, they have no encoded representation
	if c <= 0 {
		return 0.0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// SRGBCompToLinear is the inverse of LinearToSRGBComp.
func SRGBCompToLinear(c float64) float64 {
	if c <= 0 {
		return 0.0
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// InGamut checks whether r,g,b are all inside [0,1] (with a small epsilon)
func InGamut(r, g, b float64) bool {
	const eps = 1e-12
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}

func finv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	// when t <= delta: 3*delta^2*(t - 4/29)
	return 3 * delta * delta * (t - 4.0/29.0)
}

func ff(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	// t <= delta^3
	return t/(3*delta*delta) + 4.0/29.0
}

// LabToXYZ converts CIELAB (D65) to XYZ relative to the D65 whitepoint (Y=1).
func LabToXYZ(L, a, b float64) (X, Y, Z float64) {
	fy := (L + 16.0) / 116.0
	fx := fy + (a / 500.0)
	fz := fy - (b / 200.0)
	X = finv(fx) * whiteD65[0]
	Y = finv(fy) * whiteD65[1]
	Z = finv(fz) * whiteD65[2]
	return
}

// XYZToLab converts XYZ (relative to D65, Y=1) into CIELAB (D65).
func XYZToLab(X, Y, Z float64) (L, a, b float64) {
	fx := ff(X / whiteD65[0])
	fy := ff(Y / whiteD65[1])
	fz := ff(Z / whiteD65[2])
	L = 116.0*fy - 16.0
	a = 500.0 * (fx - fy)
	b = 200.0 * (fy - fz)
	return
}

// DeltaE76 is the euclidean distance in CIELAB between two linear sRGB colors.
func DeltaE76(r1, g1, b1, r2, g2, b2 float64) float64 {
	L1, a1, bb1 := XYZToLab(LinearRGBToXYZ(r1, g1, b1))
	L2, a2, bb2 := XYZToLab(LinearRGBToXYZ(r2, g2, b2))
	return math.Sqrt((L1-L2)*(L1-L2) + (a1-a2)*(a1-a2) + (bb1-bb2)*(bb1-bb2))
}

// clamp01 clamps value to [0,1]
func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}
