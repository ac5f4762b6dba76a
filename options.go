package texsample

import "log/slog"

// SamplerOption configures a Sampler during Build.
//
// Example:
//
//	sampler, err := builder.Build(
//	    texsample.WithTileMapper(residency),
//	    texsample.WithUDIMResolver(udim),
//	)
type SamplerOption func(*samplerOptions)

// samplerOptions holds optional configuration for Sampler creation.
type samplerOptions struct {
	tiles  TileMapper
	udim   UDIMResolver
	logger *slog.Logger
}

// WithTileMapper injects the tile-residency collaborator used for tiled
// descriptors. Without one, every tiled sample degrades to MissingColor.
func WithTileMapper(m TileMapper) SamplerOption {
	return func(o *samplerOptions) {
		o.tiles = m
	}
}

// WithUDIMResolver injects the UDIM numbering collaborator used by
// SampleUDIM. Without one, every UDIM sample degrades to MissingColor.
func WithUDIMResolver(r UDIMResolver) SamplerOption {
	return func(o *samplerOptions) {
		o.udim = r
	}
}

// WithLogger overrides the package logger for this sampler's build-time
// diagnostics. Sampling itself never logs.
func WithLogger(l *slog.Logger) SamplerOption {
	return func(o *samplerOptions) {
		o.logger = l
	}
}
