package pipeline

import (
	"github.com/gogpu/boxblur"
	"github.com/gogpu/boxblur/internal/filter"
	"github.com/gogpu/boxblur/internal/image"
)

// Codec loads input files into pixel buffers and persists buffers to their
// destination.
type Codec interface {
	// Load decodes the file at path into a new buffer tagged with dest.
	Load(path, dest string) (*boxblur.PixelBuffer, error)

	// Save writes b to b.Dest().
	Save(b *boxblur.PixelBuffer) error
}

// Filter derives a new buffer from src without modifying it.
type Filter interface {
	Apply(src *boxblur.PixelBuffer) (*boxblur.PixelBuffer, error)
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default: decode with the built-in codec, apply the 3x3 box blur
//	p := pipeline.New()
//
//	// Custom codec (dependency injection)
//	p := pipeline.New(pipeline.WithCodec(myCodec))
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	codec  Codec
	filter Filter
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		codec:  image.Codec{},
		filter: filter.Box{},
	}
}

// WithCodec sets the codec used by the load and save stages.
// A nil codec keeps the default.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithFilter sets the filter applied by the blur stage.
// A nil filter keeps the default box blur.
func WithFilter(f Filter) Option {
	return func(o *options) {
		if f != nil {
			o.filter = f
		}
	}
}
