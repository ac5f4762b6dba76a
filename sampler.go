package texsample

// Sampler answers texture sample queries against immutable descriptor
// tables. Build one with TableBuilder; all state it reads is frozen at
// Build time, so Sample and SampleUDIM are safe to call concurrently
// from any number of goroutines.
type Sampler struct {
	textures []TextureDescriptor
	images   []ImageInfo
	tiles    TileMapper
	udim     UDIMResolver
}

// Sample returns the filtered color of texture texID at uv. duv carries
// the screen-space derivatives and is forwarded untouched to the tile
// mapper.
//
// Failure modes degrade to sentinel colors, never errors: an unresolvable
// texture or image reference (including ids outside the table) yields
// MissingColor, a clip-rejected coordinate yields transparent black, a
// tile that has not streamed in yields the descriptor's average color,
// and a permanently failed tile yields MissingColor.
func (s *Sampler) Sample(texID int32, uv UV, duv Differential) RGBA {
	if texID < 0 || int(texID) >= len(s.textures) {
		return MissingColor
	}
	tex := &s.textures[texID]

	var info *ImageInfo
	if tex.Tiled() {
		wrapped, ok := wrapExtension(tex.Extension, uv)
		if !ok {
			return RGBA{}
		}

		if s.tiles == nil {
			return MissingColor
		}
		tile, xy := s.tiles.MapTile(tex, wrapped, duv)
		if !tile.Loaded() {
			if tile == TileLoadFailed {
				return MissingColor
			}
			return tex.AverageColor
		}

		slot := tile.Slot()
		if int(slot) >= len(s.images) {
			return MissingColor
		}
		info = &s.images[slot]

		// The mapper returned tile-local pixel coordinates; renormalize
		// against the resident tile's own dimensions.
		uv = UV{
			U: xy.U / float32(info.Width),
			V: xy.V / float32(info.Height),
		}
	} else {
		if tex.Slot < 0 || int(tex.Slot) >= len(s.images) {
			return MissingColor
		}
		info = &s.images[tex.Slot]
	}

	if info.DataType.IsVector() {
		if info.Interpolation.cubic() {
			return bicubic4(info, uv)
		}
		return info.Data.Fetch4(uv.U, uv.V)
	}

	var f float32
	if info.Interpolation.cubic() {
		f = bicubic1(info, uv)
	} else {
		f = info.Data.Fetch1(uv.U, uv.V)
	}
	return Gray(f)
}

// SampleUDIM resolves a logical multi-tile image id to the concrete
// texture containing uv and samples it. When resolution fails (no
// resolver configured, or no tile registered at uv) the result is
// MissingColor and no fetch is attempted.
func (s *Sampler) SampleUDIM(imageID int32, uv UV, duv Differential) RGBA {
	if s.udim == nil {
		return MissingColor
	}
	texID := s.udim.Resolve(imageID, uv)
	if texID == ImageNone {
		return MissingColor
	}
	return s.Sample(texID, uv, duv)
}

// TextureCount returns the number of published texture descriptors.
func (s *Sampler) TextureCount() int {
	return len(s.textures)
}

// ImageCount returns the number of published backing images.
func (s *Sampler) ImageCount() int {
	return len(s.images)
}
