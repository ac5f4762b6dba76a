package texsample

// ExtensionType determines how coordinates outside [0,1] are treated on a
// tiled texture before tile mapping runs. Flat textures delegate boundary
// handling to the fetch handle's own addressing mode instead.
type ExtensionType uint8

const (
	// ExtensionRepeat tiles the image; coordinates wrap at the boundaries.
	ExtensionRepeat ExtensionType = iota

	// ExtensionExtend clamps coordinates to the edge texels.
	ExtensionExtend

	// ExtensionClip rejects coordinates outside [0,1]; the sample is
	// transparent black, representing "nothing here" rather than an error.
	ExtensionClip

	// ExtensionMirror reflects the image at every integer boundary.
	ExtensionMirror

	extensionCount
)

// String returns a string representation of the extension type.
func (e ExtensionType) String() string {
	switch e {
	case ExtensionRepeat:
		return "Repeat"
	case ExtensionExtend:
		return "Extend"
	case ExtensionClip:
		return "Clip"
	case ExtensionMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the extension type is one of the defined values.
func (e ExtensionType) IsValid() bool {
	return e < extensionCount
}

// InterpolationType selects the filtering quality for an image.
type InterpolationType uint8

const (
	// InterpNearest selects the closest texel (no interpolation).
	InterpNearest InterpolationType = iota

	// InterpLinear performs bilinear interpolation between 4 texels.
	InterpLinear

	// InterpCubic performs cubic B-spline reconstruction over a 4x4
	// footprint, executed as four bilinear taps.
	InterpCubic

	// InterpSmart requests cubic where it helps; at sample time it is
	// treated exactly like InterpCubic. The distinction matters only to
	// whoever authors the image tables.
	InterpSmart

	interpolationCount
)

// String returns a string representation of the interpolation type.
func (i InterpolationType) String() string {
	switch i {
	case InterpNearest:
		return "Nearest"
	case InterpLinear:
		return "Linear"
	case InterpCubic:
		return "Cubic"
	case InterpSmart:
		return "Smart"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the interpolation type is one of the defined
// values.
func (i InterpolationType) IsValid() bool {
	return i < interpolationCount
}

// cubic reports whether sampling should take the bicubic path.
func (i InterpolationType) cubic() bool {
	return i == InterpCubic || i == InterpSmart
}

// ImageDataType identifies the raw texel encoding of a backing image.
// The set is closed: sampling dispatches exhaustively over it.
type ImageDataType uint8

const (
	// DataFloat4 is 4 channels of 32-bit float.
	DataFloat4 ImageDataType = iota

	// DataByte4 is 4 channels of unsigned normalized 8-bit.
	DataByte4

	// DataHalf4 is 4 channels of 16-bit float.
	DataHalf4

	// DataUShort4 is 4 channels of unsigned normalized 16-bit.
	DataUShort4

	// DataFloat1 is a single 32-bit float channel.
	DataFloat1

	// DataByte1 is a single unsigned normalized 8-bit channel.
	DataByte1

	// DataHalf1 is a single 16-bit float channel.
	DataHalf1

	// DataUShort1 is a single unsigned normalized 16-bit channel.
	DataUShort1

	dataTypeCount
)

// String returns a string representation of the data type.
func (t ImageDataType) String() string {
	switch t {
	case DataFloat4:
		return "Float4"
	case DataByte4:
		return "Byte4"
	case DataHalf4:
		return "Half4"
	case DataUShort4:
		return "UShort4"
	case DataFloat1:
		return "Float1"
	case DataByte1:
		return "Byte1"
	case DataHalf1:
		return "Half1"
	case DataUShort1:
		return "UShort1"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the data type is one of the defined values.
func (t ImageDataType) IsValid() bool {
	return t < dataTypeCount
}

// Channels returns the number of channels stored per texel (4 or 1).
func (t ImageDataType) Channels() int {
	if t.IsVector() {
		return 4
	}
	return 1
}

// IsVector reports whether the encoding stores 4 channels per texel.
// Single-channel encodings are replicated into RGB with alpha 1 when
// sampled.
func (t ImageDataType) IsVector() bool {
	switch t {
	case DataFloat4, DataByte4, DataHalf4, DataUShort4:
		return true
	default:
		return false
	}
}

// BytesPerTexel returns the storage size of one texel in bytes.
func (t ImageDataType) BytesPerTexel() int {
	switch t {
	case DataFloat4:
		return 16
	case DataHalf4, DataUShort4:
		return 8
	case DataByte4, DataFloat1:
		return 4
	case DataHalf1, DataUShort1:
		return 2
	case DataByte1:
		return 1
	default:
		return 0
	}
}
