package texsample

import (
	"errors"
	"testing"
)

func TestAddImageValidation(t *testing.T) {
	handle := &countingTexture{}

	tests := []struct {
		name    string
		data    Texture2D
		w, h    int32
		dt      ImageDataType
		interp  InterpolationType
		wantErr error
	}{
		{name: "nil handle", data: nil, w: 4, h: 4, dt: DataFloat4, interp: InterpLinear, wantErr: ErrNilHandle},
		{name: "zero width", data: handle, w: 0, h: 4, dt: DataFloat4, interp: InterpLinear, wantErr: ErrInvalidDimensions},
		{name: "negative height", data: handle, w: 4, h: -1, dt: DataFloat4, interp: InterpLinear, wantErr: ErrInvalidDimensions},
		{name: "bad data type", data: handle, w: 4, h: 4, dt: dataTypeCount, interp: InterpLinear, wantErr: ErrInvalidDataType},
		{name: "bad interpolation", data: handle, w: 4, h: 4, dt: DataFloat4, interp: interpolationCount, wantErr: ErrInvalidInterpolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTableBuilder()
			slot, err := b.AddImage(tt.data, tt.w, tt.h, tt.dt, tt.interp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddImage error = %v, want %v", err, tt.wantErr)
			}
			if slot != ImageNone {
				t.Errorf("AddImage slot on failure = %d, want ImageNone", slot)
			}
		})
	}
}

func TestAddFlatTextureValidation(t *testing.T) {
	b := NewTableBuilder()
	if _, err := b.AddImage(&countingTexture{}, 4, 4, DataFloat4, InterpLinear); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}

	if _, err := b.AddFlatTexture(ImageNone); !errors.Is(err, ErrUnboundDescriptor) {
		t.Errorf("AddFlatTexture(ImageNone) error = %v, want ErrUnboundDescriptor", err)
	}
	if _, err := b.AddFlatTexture(5); !errors.Is(err, ErrSlotRange) {
		t.Errorf("AddFlatTexture(5) error = %v, want ErrSlotRange", err)
	}
	if id, err := b.AddFlatTexture(0); err != nil || id != 0 {
		t.Errorf("AddFlatTexture(0) = (%d, %v), want (0, nil)", id, err)
	}
}

func TestAddTiledTextureValidation(t *testing.T) {
	b := NewTableBuilder()

	if _, err := b.AddTiledTexture(TileUnset, ExtensionRepeat, RGBA{}); !errors.Is(err, ErrUnboundDescriptor) {
		t.Errorf("AddTiledTexture(TileUnset) error = %v, want ErrUnboundDescriptor", err)
	}
	if _, err := b.AddTiledTexture(0, extensionCount, RGBA{}); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("AddTiledTexture bad extension error = %v, want ErrInvalidExtension", err)
	}
	if id, err := b.AddTiledTexture(0, ExtensionClip, RGBA{R: 0.5}); err != nil || id != 0 {
		t.Errorf("AddTiledTexture = (%d, %v), want (0, nil)", id, err)
	}
}

// TestBuildIsolation verifies the published sampler is unaffected by
// later builder mutation.
func TestBuildIsolation(t *testing.T) {
	b := NewTableBuilder()
	slot, err := b.AddImage(&countingTexture{}, 4, 4, DataFloat4, InterpLinear)
	if err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	if _, err := b.AddFlatTexture(slot); err != nil {
		t.Fatalf("AddFlatTexture failed: %v", err)
	}

	s, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := b.AddFlatTexture(slot); err != nil {
		t.Fatalf("AddFlatTexture after Build failed: %v", err)
	}

	if s.TextureCount() != 1 || s.ImageCount() != 1 {
		t.Errorf("sampler tables = (%d, %d), want (1, 1)", s.TextureCount(), s.ImageCount())
	}
}
