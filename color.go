package texsample

// RGBA is a 4-component single-precision color, the result type of every
// sampling operation. Channel ranges are unbounded; normalized encodings
// decode into [0,1] but float images may carry HDR values.
type RGBA struct {
	R, G, B, A float32
}

// MissingColor is the reserved color returned whenever a referenced
// texture, image slot, or tile is permanently unavailable. The value is
// fixed (debug magenta) so missing assets are visually obvious and
// bit-exact across the renderer.
var MissingColor = RGBA{R: 1, G: 0, B: 1, A: 1}

// Gray returns an opaque color with the scalar value replicated into the
// R, G and B channels and alpha set to 1. Single-channel image encodings
// sample through this.
func Gray(v float32) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1}
}

// scale multiplies every channel by s.
func (c RGBA) scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// add returns the channel-wise sum of c and o.
func (c RGBA) add(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}
