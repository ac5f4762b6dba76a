package soft

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/texsample"
)

func TestNewTileSetValidation(t *testing.T) {
	if _, err := NewTileSet(0, 0, 64, 32); !errors.Is(err, ErrInvalidTileGrid) {
		t.Errorf("zero width error = %v, want ErrInvalidTileGrid", err)
	}
	if _, err := NewTileSet(texsample.TileUnset, 64, 64, 32); !errors.Is(err, ErrInvalidTileGrid) {
		t.Errorf("unset base error = %v, want ErrInvalidTileGrid", err)
	}

	ts, err := NewTileSet(0, 100, 70, 32)
	if err != nil {
		t.Fatalf("NewTileSet failed: %v", err)
	}
	cols, rows := ts.Grid()
	if cols != 4 || rows != 3 {
		t.Errorf("Grid() = (%d,%d), want (4,3)", cols, rows)
	}
}

func TestSetTileOutOfRange(t *testing.T) {
	ts, err := NewTileSet(0, 64, 64, 32)
	if err != nil {
		t.Fatalf("NewTileSet failed: %v", err)
	}
	if err := ts.SetTile(2, 0, TileLoaded, 0); !errors.Is(err, ErrTileOutOfRange) {
		t.Errorf("SetTile(2,0) error = %v, want ErrTileOutOfRange", err)
	}
}

func TestMapTileStates(t *testing.T) {
	ts, err := NewTileSet(0, 64, 64, 32)
	if err != nil {
		t.Fatalf("NewTileSet failed: %v", err)
	}
	// 2x2 grid: (0,0) loaded to slot 5, (1,0) failed, rest pending.
	if err := ts.SetTile(0, 0, TileLoaded, 5); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}
	if err := ts.SetTile(1, 0, TileFailed, 0); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}

	desc := &texsample.TextureDescriptor{Slot: texsample.ImageNone, TileBase: 0}

	tests := []struct {
		name string
		uv   texsample.UV
		want texsample.TileDescriptor
	}{
		{name: "loaded", uv: texsample.UV{U: 0.25, V: 0.25}, want: texsample.TileDescriptor(5)},
		{name: "failed", uv: texsample.UV{U: 0.75, V: 0.25}, want: texsample.TileLoadFailed},
		{name: "pending", uv: texsample.UV{U: 0.25, V: 0.75}, want: texsample.TileNotLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ts.MapTile(desc, tt.uv, texsample.Differential{})
			if got != tt.want {
				t.Errorf("MapTile(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

// TestMapTileLocalCoordinates verifies tile origin plus local coordinate
// reproduces the virtual pixel position.
func TestMapTileLocalCoordinates(t *testing.T) {
	ts, err := NewTileSet(0, 64, 64, 32)
	if err != nil {
		t.Fatalf("NewTileSet failed: %v", err)
	}
	for ty := int32(0); ty < 2; ty++ {
		for tx := int32(0); tx < 2; tx++ {
			if err := ts.SetTile(tx, ty, TileLoaded, ty*2+tx); err != nil {
				t.Fatalf("SetTile failed: %v", err)
			}
		}
	}

	desc := &texsample.TextureDescriptor{Slot: texsample.ImageNone, TileBase: 0}

	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			uv := texsample.UV{U: float32(i) / 16.0, V: float32(j) / 16.0}
			tile, local := ts.MapTile(desc, uv, texsample.Differential{})
			if !tile.Loaded() {
				t.Fatalf("tile at %v not loaded", uv)
			}

			tx := tile.Slot() % 2
			ty := tile.Slot() / 2
			gotX := float64(tx*32) + float64(local.U)
			gotY := float64(ty*32) + float64(local.V)
			wantX := float64(uv.U) * 64.0
			wantY := float64(uv.V) * 64.0
			if math.Abs(gotX-wantX) > 1e-4 || math.Abs(gotY-wantY) > 1e-4 {
				t.Fatalf("origin+local = (%v,%v), want (%v,%v)", gotX, gotY, wantX, wantY)
			}
		}
	}
}

func TestMapTileBaseMismatch(t *testing.T) {
	ts, err := NewTileSet(16, 64, 64, 32)
	if err != nil {
		t.Fatalf("NewTileSet failed: %v", err)
	}

	desc := &texsample.TextureDescriptor{Slot: texsample.ImageNone, TileBase: 99}
	got, _ := ts.MapTile(desc, texsample.UV{U: 0.5, V: 0.5}, texsample.Differential{})
	if got != texsample.TileLoadFailed {
		t.Errorf("MapTile with mismatched base = %v, want TileLoadFailed", got)
	}
}
