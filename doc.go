// Package texsample implements the texture-sampling stage of a physically
// based renderer: given a texture id and a surface (u,v) coordinate, it
// returns a filtered 4-component color, handling multiple pixel encodings,
// multiple interpolation qualities, and virtualized multi-tile (UDIM)
// addressing with partial residency.
//
// The package owns no pixel memory and performs no I/O. Texel data is
// reached through the [Texture2D] fetch primitive, tile residency through
// the [TileMapper] collaborator, and UDIM tile numbering through
// [UDIMResolver]. A software reference implementation of the fetch
// primitive lives in backend/soft.
//
// Descriptor tables are built once with [TableBuilder] and published as an
// immutable [Sampler]; sampling itself touches only read-only state and is
// safe to call from any number of goroutines concurrently.
//
// Failures never surface as errors during sampling. A missing texture,
// image slot, or permanently failed tile yields [MissingColor]; a tile
// that has not streamed in yet yields the descriptor's average color; a
// coordinate rejected by a clip extension yields transparent black.
package texsample
