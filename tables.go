package texsample

import (
	"errors"
	"fmt"
)

// Common errors for table construction.
var (
	// ErrInvalidDimensions is returned when an image width or height is
	// non-positive.
	ErrInvalidDimensions = errors.New("texsample: invalid image dimensions")

	// ErrInvalidDataType is returned when the texel encoding is not one
	// of the defined ImageDataType values.
	ErrInvalidDataType = errors.New("texsample: invalid image data type")

	// ErrInvalidInterpolation is returned when the interpolation mode is
	// not one of the defined InterpolationType values.
	ErrInvalidInterpolation = errors.New("texsample: invalid interpolation type")

	// ErrInvalidExtension is returned when the extension policy is not
	// one of the defined ExtensionType values.
	ErrInvalidExtension = errors.New("texsample: invalid extension type")

	// ErrNilHandle is returned when an image is added without a fetch
	// handle.
	ErrNilHandle = errors.New("texsample: nil texture handle")

	// ErrSlotRange is returned when a flat descriptor references a slot
	// outside the image table.
	ErrSlotRange = errors.New("texsample: image slot out of range")

	// ErrUnboundDescriptor is returned when a descriptor is neither flat
	// nor tiled.
	ErrUnboundDescriptor = errors.New("texsample: descriptor binds neither slot nor tile base")
)

// TableBuilder assembles the two flat, append-only tables the sampler
// reads: the image table (concrete backing images, indexed by slot) and
// the texture table (descriptors, indexed by texture id). Entries are
// validated as they are added; Build publishes an immutable Sampler.
//
// The builder itself is not safe for concurrent use. Populate it before
// rendering begins, on one goroutine.
type TableBuilder struct {
	textures []TextureDescriptor
	images   []ImageInfo
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// AddImage appends a backing image and returns its slot.
func (b *TableBuilder) AddImage(data Texture2D, width, height int32, dataType ImageDataType, interp InterpolationType) (int32, error) {
	if data == nil {
		return ImageNone, ErrNilHandle
	}
	if width <= 0 || height <= 0 {
		return ImageNone, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !dataType.IsValid() {
		return ImageNone, fmt.Errorf("%w: %d", ErrInvalidDataType, dataType)
	}
	if !interp.IsValid() {
		return ImageNone, fmt.Errorf("%w: %d", ErrInvalidInterpolation, interp)
	}

	slot := int32(len(b.images))
	b.images = append(b.images, ImageInfo{
		Data:          data,
		Width:         width,
		Height:        height,
		DataType:      dataType,
		Interpolation: interp,
	})

	Logger().Debug("texsample: image added",
		"slot", slot, "size", fmt.Sprintf("%dx%d", width, height),
		"dataType", dataType.String(), "interpolation", interp.String())
	return slot, nil
}

// AddFlatTexture appends a descriptor addressing a single flat image and
// returns its texture id. The slot must already exist in the image table.
func (b *TableBuilder) AddFlatTexture(slot int32) (int32, error) {
	if slot == ImageNone {
		return ImageNone, ErrUnboundDescriptor
	}
	if slot < 0 || int(slot) >= len(b.images) {
		return ImageNone, fmt.Errorf("%w: %d", ErrSlotRange, slot)
	}

	id := int32(len(b.textures))
	b.textures = append(b.textures, TextureDescriptor{
		Slot:     slot,
		TileBase: TileUnset,
	})
	return id, nil
}

// AddTiledTexture appends a descriptor addressing a virtualized tiled
// image and returns its texture id. tileBase is the descriptor's base
// offset in the tile mapper's space; avg is the average-color fallback
// returned while tiles stream in.
func (b *TableBuilder) AddTiledTexture(tileBase uint32, ext ExtensionType, avg RGBA) (int32, error) {
	if tileBase == TileUnset {
		return ImageNone, ErrUnboundDescriptor
	}
	if !ext.IsValid() {
		return ImageNone, fmt.Errorf("%w: %d", ErrInvalidExtension, ext)
	}

	id := int32(len(b.textures))
	b.textures = append(b.textures, TextureDescriptor{
		Slot:         ImageNone,
		TileBase:     tileBase,
		Extension:    ext,
		AverageColor: avg,
	})
	return id, nil
}

// Build publishes the tables as an immutable Sampler. The builder remains
// usable afterwards; the sampler holds copies.
func (b *TableBuilder) Build(opts ...SamplerOption) (*Sampler, error) {
	var o samplerOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	s := &Sampler{
		textures: append([]TextureDescriptor(nil), b.textures...),
		images:   append([]ImageInfo(nil), b.images...),
		tiles:    o.tiles,
		udim:     o.udim,
	}

	log.Info("texsample: tables published",
		"textures", len(s.textures), "images", len(s.images),
		"tileMapper", s.tiles != nil, "udim", s.udim != nil)
	return s, nil
}
