package soft

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/gogpu/texsample"
)

// Texel returns the decoded color of the texel at (x, y), which must be
// in bounds. Single-channel encodings replicate the value into RGB with
// alpha 1, matching what the sampler produces for them.
func (t *Texture) Texel(x, y int32) texsample.RGBA {
	d := t.texelBytes(x, y)

	switch t.dataType {
	case texsample.DataFloat4:
		return texsample.RGBA{
			R: f32At(d, 0),
			G: f32At(d, 4),
			B: f32At(d, 8),
			A: f32At(d, 12),
		}
	case texsample.DataByte4:
		return texsample.RGBA{
			R: unorm8(d[0]),
			G: unorm8(d[1]),
			B: unorm8(d[2]),
			A: unorm8(d[3]),
		}
	case texsample.DataHalf4:
		return texsample.RGBA{
			R: halfAt(d, 0),
			G: halfAt(d, 2),
			B: halfAt(d, 4),
			A: halfAt(d, 6),
		}
	case texsample.DataUShort4:
		return texsample.RGBA{
			R: unorm16At(d, 0),
			G: unorm16At(d, 2),
			B: unorm16At(d, 4),
			A: unorm16At(d, 6),
		}
	default:
		return texsample.Gray(t.decodeScalar(d))
	}
}

// texel1 returns the single-channel value of the texel at (x, y). For
// vector encodings this is the R channel.
func (t *Texture) texel1(x, y int32) float32 {
	d := t.texelBytes(x, y)

	switch t.dataType {
	case texsample.DataFloat4, texsample.DataFloat1:
		return f32At(d, 0)
	case texsample.DataByte4, texsample.DataByte1:
		return unorm8(d[0])
	case texsample.DataHalf4, texsample.DataHalf1:
		return halfAt(d, 0)
	default: // ushort4, ushort1
		return unorm16At(d, 0)
	}
}

// SetTexel encodes c into the texel at (x, y). Single-channel encodings
// store c.R. Returns ErrOutOfBounds when (x, y) is outside the texture.
func (t *Texture) SetTexel(x, y int32, c texsample.RGBA) error {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return ErrOutOfBounds
	}
	d := t.texelBytes(x, y)

	switch t.dataType {
	case texsample.DataFloat4:
		putF32At(d, 0, c.R)
		putF32At(d, 4, c.G)
		putF32At(d, 8, c.B)
		putF32At(d, 12, c.A)
	case texsample.DataByte4:
		d[0] = toUnorm8(c.R)
		d[1] = toUnorm8(c.G)
		d[2] = toUnorm8(c.B)
		d[3] = toUnorm8(c.A)
	case texsample.DataHalf4:
		putHalfAt(d, 0, c.R)
		putHalfAt(d, 2, c.G)
		putHalfAt(d, 4, c.B)
		putHalfAt(d, 6, c.A)
	case texsample.DataUShort4:
		putUnorm16At(d, 0, c.R)
		putUnorm16At(d, 2, c.G)
		putUnorm16At(d, 4, c.B)
		putUnorm16At(d, 6, c.A)
	case texsample.DataFloat1:
		putF32At(d, 0, c.R)
	case texsample.DataByte1:
		d[0] = toUnorm8(c.R)
	case texsample.DataHalf1:
		putHalfAt(d, 0, c.R)
	case texsample.DataUShort1:
		putUnorm16At(d, 0, c.R)
	}
	return nil
}

// texelBytes returns the raw bytes of the texel at (x, y).
func (t *Texture) texelBytes(x, y int32) []byte {
	bpt := t.dataType.BytesPerTexel()
	off := (int(y)*int(t.width) + int(x)) * bpt
	return t.data[off : off+bpt]
}

// decodeScalar decodes one single-channel texel.
func (t *Texture) decodeScalar(d []byte) float32 {
	switch t.dataType {
	case texsample.DataFloat1:
		return f32At(d, 0)
	case texsample.DataByte1:
		return unorm8(d[0])
	case texsample.DataHalf1:
		return halfAt(d, 0)
	default: // ushort1
		return unorm16At(d, 0)
	}
}

func f32At(d []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(d[off:]))
}

func putF32At(d []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(d[off:], math.Float32bits(v))
}

func halfAt(d []byte, off int) float32 {
	return float16.Frombits(binary.LittleEndian.Uint16(d[off:])).Float32()
}

func putHalfAt(d []byte, off int, v float32) {
	binary.LittleEndian.PutUint16(d[off:], float16.Fromfloat32(v).Bits())
}

func unorm8(v byte) float32 {
	return float32(v) / 255.0
}

func toUnorm8(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255.0 + 0.5)
}

func unorm16At(d []byte, off int) float32 {
	return float32(binary.LittleEndian.Uint16(d[off:])) / 65535.0
}

func putUnorm16At(d []byte, off int, v float32) {
	if v <= 0 {
		binary.LittleEndian.PutUint16(d[off:], 0)
		return
	}
	if v >= 1 {
		binary.LittleEndian.PutUint16(d[off:], 65535)
		return
	}
	binary.LittleEndian.PutUint16(d[off:], uint16(v*65535.0+0.5))
}
