package texsample

// UV is a normalized 2D texture coordinate. (0,0) is one corner of the
// image, (1,1) the opposite corner; values outside that range are handled
// by the extension policy (tiled textures) or the fetch handle's
// addressing mode (flat textures).
type UV struct {
	U, V float32
}

// Differential carries the screen-space partial derivatives of a UV
// coordinate. The sampler itself never consumes them; they are forwarded
// to the tile-residency collaborator, which may use them for tile and
// resolution selection.
type Differential struct {
	DUDx, DUDy float32
	DVDx, DVDy float32
}
