// Package boxblur provides the pixel buffer used by the boxblur tool.
//
// # Overview
//
// boxblur loads raster images, replaces every pixel with the average of its
// 3x3 neighbourhood and writes the result as PNG. This package holds the
// in-memory image representation shared by all stages:
//
//   - [Pixel]: one 8-bit RGB sample
//   - [PixelBuffer]: a row-major grid of pixels tagged with its output path
//   - [Batch]: an ordered set of owned buffers, one per input image
//
// # Ownership
//
// A PixelBuffer has exactly one owner. Stages hand buffers over instead of
// sharing them, and the owner calls Release as soon as a buffer has been
// superseded by a derived buffer or written to disk. [LiveBuffers] reports
// how many buffers are currently allocated, which makes leaks and double
// releases observable in tests.
//
// # Architecture
//
//   - boxblur: pixel buffers, batch ownership, logging
//   - internal/filter: the 3x3 box blur
//   - internal/image: decoding and PNG encoding
//   - pipeline: load, blur and save stages over a batch of files
//   - cmd/boxblur: command line front end
package boxblur

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
