package texsample

import "math"

// ImageNone is the reserved "no texture" identifier. Sampling it (or any
// descriptor that resolves to it) returns MissingColor.
const ImageNone int32 = -1

// TileUnset is the reserved marker distinguishing flat from tiled
// descriptors: a TextureDescriptor whose TileBase equals TileUnset
// addresses a single flat image through its Slot.
const TileUnset uint32 = math.MaxUint32

// TextureDescriptor identifies either a flat image or a virtualized tiled
// image. Exactly one of the two addressing forms is active: flat
// descriptors carry a valid Slot and TileBase == TileUnset; tiled
// descriptors carry a TileBase into the residency manager's descriptor
// space plus the extension policy and average-color fallback used while
// tiles stream in.
//
// Descriptors are immutable once published into a Sampler.
type TextureDescriptor struct {
	// Slot indexes the image table for flat textures. ImageNone when the
	// descriptor is tiled (or deliberately unbound).
	Slot int32

	// TileBase is the descriptor's base offset in the tile mapper's
	// space. TileUnset for flat textures.
	TileBase uint32

	// Extension is the wrap policy applied before tile mapping.
	Extension ExtensionType

	// AverageColor is a precomputed single-color summary of the whole
	// image, returned while a tile is not yet resident.
	AverageColor RGBA
}

// Tiled reports whether the descriptor uses virtualized tile addressing.
func (d *TextureDescriptor) Tiled() bool {
	return d.TileBase != TileUnset
}

// ImageInfo describes one concrete backing image: its fetch handle, pixel
// dimensions, texel encoding and filtering quality. Entries are immutable
// for the lifetime of a render and referenced by integer slot.
type ImageInfo struct {
	// Data is the opaque fetch handle. The sampler never allocates,
	// copies or frees it; lifetime belongs to the owning asset subsystem.
	Data Texture2D

	// Width and Height are the pixel dimensions, strictly positive.
	Width  int32
	Height int32

	// DataType is the raw texel encoding.
	DataType ImageDataType

	// Interpolation is the filtering quality applied when sampling.
	Interpolation InterpolationType
}

// TileDescriptor is the result of resolving a coordinate against tile
// residency. Non-negative values are a live image slot; the two negative
// sentinels report a tile that has not streamed in yet and one whose
// load failed permanently. A descriptor is valid only for the call that
// produced it: residency can change between samples.
type TileDescriptor int32

const (
	// TileNotLoaded marks a tile whose pixel data has not streamed in
	// yet. Sampling falls back to the descriptor's average color.
	TileNotLoaded TileDescriptor = -1

	// TileLoadFailed marks a tile that permanently failed to load.
	// Sampling returns MissingColor.
	TileLoadFailed TileDescriptor = -2
)

// Loaded reports whether the descriptor encodes a resident image slot.
func (d TileDescriptor) Loaded() bool {
	return d >= 0
}

// Slot returns the image-table slot of a loaded tile. Only meaningful
// when Loaded is true.
func (d TileDescriptor) Slot() int32 {
	return int32(d)
}
