package texsample

import "github.com/chewxy/math32"

// UDIMBase is the tile number of the grid origin in the conventional
// UDIM numbering: tile = UDIMBase + floor(u) + 10*floor(v), with floor(u)
// restricted to [0,10).
const UDIMBase = 1001

// UDIMColumns is the grid width of the conventional numbering.
const UDIMColumns = 10

// GridUDIM resolves logical multi-tile image ids to per-tile texture ids
// using the conventional 1001-based grid numbering. It implements
// UDIMResolver.
//
// Register all tiles before rendering begins; Resolve is read-only and
// safe for concurrent use once registration is done.
type GridUDIM struct {
	tiles map[int32]map[int32]int32
}

// NewGridUDIM creates an empty UDIM registry.
func NewGridUDIM() *GridUDIM {
	return &GridUDIM{tiles: make(map[int32]map[int32]int32)}
}

// Register binds one tile of a logical image to a concrete texture id.
// tile is the conventional tile number (1001 for the origin tile).
func (g *GridUDIM) Register(imageID, tile, texID int32) {
	if g.tiles == nil {
		g.tiles = make(map[int32]map[int32]int32)
	}
	m := g.tiles[imageID]
	if m == nil {
		m = make(map[int32]int32)
		g.tiles[imageID] = m
	}
	m[tile] = texID
}

// TileNumber returns the conventional tile number containing uv, or
// ImageNone when uv lies outside the grid's valid column range.
func TileNumber(uv UV) int32 {
	tu := int32(math32.Floor(uv.U))
	tv := int32(math32.Floor(uv.V))
	if tu < 0 || tu >= UDIMColumns || tv < 0 {
		return ImageNone
	}
	return UDIMBase + tu + UDIMColumns*tv
}

// Resolve returns the texture id of the tile containing uv, or ImageNone
// when the image or tile is not registered.
func (g *GridUDIM) Resolve(imageID int32, uv UV) int32 {
	tile := TileNumber(uv)
	if tile == ImageNone {
		return ImageNone
	}
	m := g.tiles[imageID]
	if m == nil {
		return ImageNone
	}
	texID, ok := m[tile]
	if !ok {
		return ImageNone
	}
	return texID
}
