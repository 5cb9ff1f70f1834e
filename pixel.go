package boxblur

import (
	"math"

	"go.uber.org/atomic"
)

// DefaultPixelLimit is the default maximum number of pixels a single
// PixelBuffer may hold (256 megapixels, 768 MiB of RGB data).
const DefaultPixelLimit = 1 << 28

var (
	// liveBuffers counts buffers that were allocated and not yet released.
	liveBuffers atomic.Int64

	// pixelLimit bounds width*height for every allocation.
	pixelLimit = atomic.NewInt64(DefaultPixelLimit)
)

// Pixel is a single 8-bit RGB sample.
type Pixel struct {
	R, G, B uint8
}

// PixelBuffer is a decoded RGB image together with the destination it will
// eventually be written to.
//
// Pixels are stored row-major: the pixel at (row, col) lives at index
// row*width + col. A PixelBuffer has exactly one owner at a time; the owner
// calls Release once the buffer has been superseded or persisted.
//
// A PixelBuffer is not safe for concurrent use.
type PixelBuffer struct {
	width  int
	height int
	pix    []Pixel
	dest   string

	released bool
}

// NewPixelBuffer allocates a width x height buffer tagged with dest.
// All pixels start as black; the caller is expected to populate them.
//
// Returns ErrInvalidDimensions if width or height is not positive and
// ErrAllocation if the buffer would exceed the pixel limit.
func NewPixelBuffer(width, height int, dest string) (*PixelBuffer, error) {
	n, err := allocSize(width, height)
	if err != nil {
		return nil, err
	}

	b := &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, n),
		dest:   dest,
	}
	liveBuffers.Inc()
	return b, nil
}

// allocSize validates the dimensions and returns width*height.
func allocSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrInvalidDimensions
	}
	limit := pixelLimit.Load()
	if int64(width) > limit/int64(height) || int64(width)*int64(height) > math.MaxInt {
		return 0, ErrAllocation
	}
	return width * height, nil
}

// Copy returns a deep copy of src. The copy has the same dimensions and
// destination and shares no pixel storage with src.
//
// Returns ErrInvalidInput if src is nil or has been released.
func Copy(src *PixelBuffer) (*PixelBuffer, error) {
	if src == nil || src.released {
		return nil, ErrInvalidInput
	}

	dst, err := NewPixelBuffer(src.width, src.height, src.dest)
	if err != nil {
		return nil, err
	}
	copy(dst.pix, src.pix)
	return dst, nil
}

// Width returns the image width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Dest returns the output destination the buffer is tagged with.
func (b *PixelBuffer) Dest() string {
	return b.dest
}

// Len returns the number of pixels, width*height.
func (b *PixelBuffer) Len() int {
	return len(b.pix)
}

// Pixels returns the row-major pixel slice.
// Modifying the slice modifies the buffer.
func (b *PixelBuffer) Pixels() []Pixel {
	return b.pix
}

// At returns the pixel at (row, col).
// The caller guarantees 0 <= row < Height() and 0 <= col < Width();
// out-of-range access panics.
func (b *PixelBuffer) At(row, col int) Pixel {
	return b.pix[row*b.width+col]
}

// Set stores p at (row, col). Bounds are the same as for At.
func (b *PixelBuffer) Set(row, col int, p Pixel) {
	b.pix[row*b.width+col] = p
}

// Release drops the pixel storage. It is safe to call on a nil buffer and
// calling it more than once has no further effect.
func (b *PixelBuffer) Release() {
	if b == nil || b.released {
		return
	}
	b.pix = nil
	b.released = true
	liveBuffers.Dec()
}

// Released reports whether Release has been called.
func (b *PixelBuffer) Released() bool {
	return b.released
}

// LiveBuffers returns the number of buffers allocated in this process that
// have not been released yet.
func LiveBuffers() int64 {
	return liveBuffers.Load()
}

// SetPixelLimit sets the maximum number of pixels a single buffer may hold
// and returns the previous limit. Values below 1 restore DefaultPixelLimit.
func SetPixelLimit(n int64) int64 {
	if n < 1 {
		n = DefaultPixelLimit
	}
	return pixelLimit.Swap(n)
}

// PixelLimit returns the current per-buffer pixel limit.
func PixelLimit() int64 {
	return pixelLimit.Load()
}
