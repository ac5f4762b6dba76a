// Package soft is a software reference implementation of the texel-fetch
// primitive consumed by texsample. It stores raw texel memory in every
// encoding the sampler dispatches over and filters with the same
// half-texel-center convention a hardware bilinear unit uses, so the
// sampler's four-tap bicubic reduction is exact against it.
//
// Handles are configured with WebGPU-style address and filter modes
// (gputypes), the same vocabulary a GPU-backed fetcher would use.
package soft

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texsample"
)

// Common errors for texture construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("soft: invalid texture dimensions")

	// ErrInvalidDataType is returned when the texel encoding is not one of
	// the defined values.
	ErrInvalidDataType = errors.New("soft: invalid texel encoding")

	// ErrDataTooSmall is returned when provided data is smaller than the
	// encoding requires.
	ErrDataTooSmall = errors.New("soft: data buffer too small")

	// ErrOutOfBounds is returned when texel coordinates are outside the
	// texture.
	ErrOutOfBounds = errors.New("soft: texel coordinates out of bounds")
)

// Texture is CPU-resident texel memory implementing texsample.Texture2D.
//
// Thread safety: safe for concurrent fetches. SetTexel requires external
// synchronization against fetches.
type Texture struct {
	data     []byte
	width    int32
	height   int32
	dataType texsample.ImageDataType
	address  gputypes.AddressMode
	filter   gputypes.FilterMode
}

// Option configures a Texture during creation.
type Option func(*Texture)

// WithAddressMode sets the boundary addressing mode (default clamp to
// edge).
func WithAddressMode(m gputypes.AddressMode) Option {
	return func(t *Texture) {
		t.address = m
	}
}

// WithFilterMode sets the filter applied by Fetch4/Fetch1 (default
// linear).
func WithFilterMode(m gputypes.FilterMode) Option {
	return func(t *Texture) {
		t.filter = m
	}
}

// NewTexture creates a zero-filled texture with the given dimensions and
// texel encoding.
func NewTexture(width, height int32, dataType texsample.ImageDataType, opts ...Option) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !dataType.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDataType, dataType)
	}

	t := &Texture{
		data:     make([]byte, int(width)*int(height)*dataType.BytesPerTexel()),
		width:    width,
		height:   height,
		dataType: dataType,
		address:  gputypes.AddressModeClampToEdge,
		filter:   gputypes.FilterModeLinear,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// FromRaw creates a texture over existing texel memory without copying.
// The caller must keep data valid for the lifetime of the texture. Texels
// are row-major with no row padding, little-endian for multi-byte
// channels.
func FromRaw(data []byte, width, height int32, dataType texsample.ImageDataType, opts ...Option) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !dataType.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDataType, dataType)
	}

	required := int(width) * int(height) * dataType.BytesPerTexel()
	if len(data) < required {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrDataTooSmall, len(data), required)
	}

	t := &Texture{
		data:     data[:required],
		width:    width,
		height:   height,
		dataType: dataType,
		address:  gputypes.AddressModeClampToEdge,
		filter:   gputypes.FilterModeLinear,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int32 { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int32 { return t.height }

// DataType returns the texel encoding.
func (t *Texture) DataType() texsample.ImageDataType { return t.dataType }

// Fetch4 returns the filtered 4-component value at normalized (x, y).
// Single-channel encodings come back with the value replicated into RGB
// and alpha 1.
func (t *Texture) Fetch4(x, y float32) texsample.RGBA {
	if t.filter == gputypes.FilterModeNearest {
		ix, iy := t.nearestTexel(x, y)
		return t.Texel(ix, iy)
	}

	x0, x1, y0, y1, tx, ty := t.bilinearTexels(x, y)

	c00 := t.Texel(x0, y0)
	c10 := t.Texel(x1, y0)
	c01 := t.Texel(x0, y1)
	c11 := t.Texel(x1, y1)

	return texsample.RGBA{
		R: lerp2(c00.R, c10.R, c01.R, c11.R, tx, ty),
		G: lerp2(c00.G, c10.G, c01.G, c11.G, tx, ty),
		B: lerp2(c00.B, c10.B, c01.B, c11.B, tx, ty),
		A: lerp2(c00.A, c10.A, c01.A, c11.A, tx, ty),
	}
}

// Fetch1 returns the filtered single-channel value at normalized (x, y).
// For vector encodings this is the R channel.
func (t *Texture) Fetch1(x, y float32) float32 {
	if t.filter == gputypes.FilterModeNearest {
		ix, iy := t.nearestTexel(x, y)
		return t.texel1(ix, iy)
	}

	x0, x1, y0, y1, tx, ty := t.bilinearTexels(x, y)

	v00 := t.texel1(x0, y0)
	v10 := t.texel1(x1, y0)
	v01 := t.texel1(x0, y1)
	v11 := t.texel1(x1, y1)

	return lerp2(v00, v10, v01, v11, tx, ty)
}

// nearestTexel converts a normalized coordinate to the containing texel
// index under the configured address mode.
func (t *Texture) nearestTexel(x, y float32) (int32, int32) {
	ix := t.wrapTexel(int32(math32.Floor(x*float32(t.width))), t.width)
	iy := t.wrapTexel(int32(math32.Floor(y*float32(t.height))), t.height)
	return ix, iy
}

// bilinearTexels resolves the 2x2 texel footprint and interpolation
// fractions for a bilinear fetch. Texel centers sit at (i+0.5)/size.
func (t *Texture) bilinearTexels(x, y float32) (x0, x1, y0, y1 int32, tx, ty float32) {
	fx := x*float32(t.width) - 0.5
	fy := y*float32(t.height) - 0.5

	px := math32.Floor(fx)
	py := math32.Floor(fy)
	tx = fx - px
	ty = fy - py

	x0 = t.wrapTexel(int32(px), t.width)
	x1 = t.wrapTexel(int32(px)+1, t.width)
	y0 = t.wrapTexel(int32(py), t.height)
	y1 = t.wrapTexel(int32(py)+1, t.height)
	return
}

// wrapTexel maps an unbounded texel index into [0, n) under the
// configured address mode.
func (t *Texture) wrapTexel(i, n int32) int32 {
	switch t.address {
	case gputypes.AddressModeRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case gputypes.AddressModeMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // clamp to edge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// lerp2 performs bilinear interpolation on a 2x2 grid.
func lerp2(v00, v10, v01, v11, tx, ty float32) float32 {
	v0 := v00 + (v10-v00)*tx
	v1 := v01 + (v11-v01)*tx
	return v0 + (v1-v0)*ty
}
