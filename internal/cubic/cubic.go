// Package cubic provides the cubic B-spline basis used for bicubic
// texture reconstruction.
//
// The four basis weights W0..W3 cover a 4x4 texel footprint. G0/G1 and
// H0/H1 reduce that footprint to two bilinear taps per axis: a bilinear
// fetch at offset H0 with amplitude G0 reproduces the combined
// contribution of the first two taps, and likewise H1/G1 for the last
// two. Four bilinear fetches then stand in for sixteen point fetches.
package cubic

// W0 returns the first cubic B-spline basis weight for fraction a in [0,1).
func W0(a float32) float32 {
	return (1.0 / 6.0) * (a*(a*(-a+3.0)-3.0) + 1.0)
}

// W1 returns the second cubic B-spline basis weight.
func W1(a float32) float32 {
	return (1.0 / 6.0) * (a*a*(3.0*a-6.0) + 4.0)
}

// W2 returns the third cubic B-spline basis weight.
func W2(a float32) float32 {
	return (1.0 / 6.0) * (a*(a*(-3.0*a+3.0)+3.0) + 1.0)
}

// W3 returns the fourth cubic B-spline basis weight.
func W3(a float32) float32 {
	return (1.0 / 6.0) * (a * a * a)
}

// G0 is the amplitude of the first bilinear tap. G0(a)+G1(a) = 1 for all a.
func G0(a float32) float32 {
	return W0(a) + W1(a)
}

// G1 is the amplitude of the second bilinear tap.
func G1(a float32) float32 {
	return W2(a) + W3(a)
}

// H0 is the fractional texel offset of the first bilinear tap: [-1, 0)
// in exact arithmetic, landing on 0 within float32 rounding as a
// approaches 1. Division is safe: G0 > 0 on [0,1).
func H0(a float32) float32 {
	return (W1(a) / G0(a)) - 1.0
}

// H1 is the fractional texel offset of the second bilinear tap: [1, 2)
// in exact arithmetic, up to the same rounding at the upper end.
func H1(a float32) float32 {
	return (W3(a) / G1(a)) + 1.0
}
