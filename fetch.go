package texsample

// Texture2D is the hardware (or software) texel-fetch primitive. A handle
// is configured by its owning subsystem with an addressing mode
// (clamp/repeat/mirror) and a filter (nearest/bilinear); the sampler only
// issues fetches at normalized coordinates and trusts the handle's
// configuration for boundary behavior.
//
// Texel centers sit at (i+0.5)/size. The bicubic reduction in this
// package is exact only when Fetch performs ideal bilinear interpolation
// between those centers; backend/soft does.
//
// Implementations must be safe for concurrent use: a render issues
// fetches from many goroutines with no ordering guarantees.
type Texture2D interface {
	// Fetch4 returns the filtered 4-component value at (x, y).
	Fetch4(x, y float32) RGBA

	// Fetch1 returns the filtered single-channel value at (x, y).
	// For vector encodings this is the first (R) channel.
	Fetch1(x, y float32) float32
}

// TileMapper is the tile-residency collaborator for virtualized textures.
// It is external to this package: the residency manager owns tile state
// and populates descriptors; the sampler only observes the result.
type TileMapper interface {
	// MapTile translates a wrapped coordinate plus its derivatives into
	// the descriptor of the containing tile and the coordinate local to
	// that tile, in the tile's pixel space. The returned descriptor has
	// no identity beyond this call.
	MapTile(desc *TextureDescriptor, uv UV, duv Differential) (TileDescriptor, UV)
}

// UDIMResolver maps a logical multi-tile image identifier plus a
// coordinate to the concrete texture id of the tile containing that
// coordinate, or ImageNone when no tile is registered there. The
// numbering convention belongs to the implementation; GridUDIM provides
// the conventional 1001-based grid.
type UDIMResolver interface {
	Resolve(imageID int32, uv UV) int32
}
