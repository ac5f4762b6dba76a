package texsample

import "github.com/chewxy/math32"

// wrapExtension applies a tiled texture's extension policy to a
// coordinate. The second result is false when the policy rejects the
// coordinate outright (clip outside [0,1]); the sample is then
// transparent black and no fetch is attempted.
func wrapExtension(ext ExtensionType, uv UV) (UV, bool) {
	switch ext {
	case ExtensionRepeat:
		return UV{U: frac(uv.U), V: frac(uv.V)}, true
	case ExtensionExtend:
		return UV{U: clamp01(uv.U), V: clamp01(uv.V)}, true
	case ExtensionClip:
		if uv.U < 0 || uv.U > 1 || uv.V < 0 || uv.V > 1 {
			return UV{}, false
		}
		return uv, true
	case ExtensionMirror:
		return UV{U: mirror(uv.U), V: mirror(uv.V)}, true
	default:
		return uv, true
	}
}

// frac returns the fractional part of x, always in [0,1).
func frac(x float32) float32 {
	return x - math32.Floor(x)
}

// clamp01 clamps x to [0,1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// mirror reflects x at every integer boundary, producing a continuous
// triangle wave with period 2.
func mirror(x float32) float32 {
	xi := math32.Floor(x)
	xf := x - xi
	if int32(xi)&1 != 0 {
		return 1 - xf
	}
	return xf
}
