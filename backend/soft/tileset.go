package soft

import (
	"errors"
	"fmt"

	"github.com/gogpu/texsample"
)

// TileState is the residency state of one tile in a TileSet.
type TileState uint8

const (
	// TilePending means the tile's pixel data has not streamed in yet.
	TilePending TileState = iota

	// TileLoaded means the tile is resident and bound to an image slot.
	TileLoaded

	// TileFailed means the tile permanently failed to load.
	TileFailed
)

// String returns a string representation of the tile state.
func (s TileState) String() string {
	switch s {
	case TilePending:
		return "Pending"
	case TileLoaded:
		return "Loaded"
	case TileFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Common errors for tile sets.
var (
	// ErrInvalidTileGrid is returned when the virtual dimensions or tile
	// size are non-positive.
	ErrInvalidTileGrid = errors.New("soft: invalid tile grid")

	// ErrTileOutOfRange is returned when a tile index is outside the grid.
	ErrTileOutOfRange = errors.New("soft: tile index out of range")
)

// TileSet is a reference residency table implementing texsample.TileMapper
// for one virtualized texture: a virtual image of fixed pixel dimensions
// cut into square tiles, each independently pending, loaded (bound to an
// image slot) or failed.
//
// A production residency manager replaces this with its own TileMapper;
// TileSet exists so the tiled sampling path can run and be tested without
// one.
//
// Thread safety: MapTile is a pure read. SetTile requires external
// synchronization against in-flight sampling; update residency between
// renders.
type TileSet struct {
	base     uint32
	virtualW int32
	virtualH int32
	tileSize int32
	cols     int32
	rows     int32
	states   []TileState
	slots    []int32
}

// NewTileSet creates a tile grid for a virtual image of virtualW x
// virtualH pixels cut into tileSize x tileSize tiles, all initially
// pending. base must match the TileBase of the descriptor this set
// serves.
func NewTileSet(base uint32, virtualW, virtualH, tileSize int32) (*TileSet, error) {
	if base == texsample.TileUnset {
		return nil, fmt.Errorf("%w: base is the unset marker", ErrInvalidTileGrid)
	}
	if virtualW <= 0 || virtualH <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d / %d", ErrInvalidTileGrid, virtualW, virtualH, tileSize)
	}

	cols := (virtualW + tileSize - 1) / tileSize
	rows := (virtualH + tileSize - 1) / tileSize
	n := int(cols) * int(rows)

	return &TileSet{
		base:     base,
		virtualW: virtualW,
		virtualH: virtualH,
		tileSize: tileSize,
		cols:     cols,
		rows:     rows,
		states:   make([]TileState, n),
		slots:    make([]int32, n),
	}, nil
}

// Base returns the tile-descriptor base this set serves.
func (ts *TileSet) Base() uint32 { return ts.base }

// Grid returns the tile grid dimensions as (columns, rows).
func (ts *TileSet) Grid() (int32, int32) { return ts.cols, ts.rows }

// SetTile updates the residency state of tile (tx, ty). slot is the
// image-table slot backing the tile; it is ignored unless state is
// TileLoaded.
func (ts *TileSet) SetTile(tx, ty int32, state TileState, slot int32) error {
	if tx < 0 || tx >= ts.cols || ty < 0 || ty >= ts.rows {
		return fmt.Errorf("%w: (%d,%d)", ErrTileOutOfRange, tx, ty)
	}
	i := ty*ts.cols + tx
	ts.states[i] = state
	ts.slots[i] = slot
	return nil
}

// MapTile resolves a wrapped coordinate to the containing tile's
// descriptor and the coordinate local to that tile, in tile pixel space.
// Derivatives are accepted for interface compatibility; this reference
// implementation has a single resolution level and ignores them.
func (ts *TileSet) MapTile(desc *texsample.TextureDescriptor, uv texsample.UV, _ texsample.Differential) (texsample.TileDescriptor, texsample.UV) {
	// A descriptor pointing at a different tile space is a wiring bug;
	// surface it as a hard failure rather than a silent average color.
	if desc.TileBase != ts.base {
		return texsample.TileLoadFailed, texsample.UV{}
	}

	px := uv.U * float32(ts.virtualW)
	py := uv.V * float32(ts.virtualH)

	tx := clampIndex(int32(px)/ts.tileSize, ts.cols)
	ty := clampIndex(int32(py)/ts.tileSize, ts.rows)

	local := texsample.UV{
		U: px - float32(tx*ts.tileSize),
		V: py - float32(ty*ts.tileSize),
	}

	i := ty*ts.cols + tx
	switch ts.states[i] {
	case TileLoaded:
		return texsample.TileDescriptor(ts.slots[i]), local
	case TileFailed:
		return texsample.TileLoadFailed, texsample.UV{}
	default:
		return texsample.TileNotLoaded, texsample.UV{}
	}
}

// clampIndex clamps i to [0, n).
func clampIndex(i, n int32) int32 {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
