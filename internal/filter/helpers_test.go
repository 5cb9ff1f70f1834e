package filter

import (
	"testing"

	"github.com/gogpu/boxblur"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given pixel.
func createTestBuffer(t *testing.T, w, h int, p boxblur.Pixel) *boxblur.PixelBuffer {
	t.Helper()
	b, err := boxblur.NewPixelBuffer(w, h, "test.png")
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	t.Cleanup(b.Release)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			b.Set(row, col, p)
		}
	}
	return b
}

// createGradientBuffer creates a buffer whose channels vary with position so
// that every neighbourhood sum is distinct.
func createGradientBuffer(t *testing.T, w, h int) *boxblur.PixelBuffer {
	t.Helper()
	b := createTestBuffer(t, w, h, boxblur.Pixel{})
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			b.Set(row, col, boxblur.Pixel{
				R: uint8((row*37 + col*11) % 256),
				G: uint8((row*5 + col*53 + 7) % 256),
				B: uint8((row*col*13 + 101) % 256),
			})
		}
	}
	return b
}

// gray returns a pixel with all three channels set to v.
func gray(v uint8) boxblur.Pixel {
	return boxblur.Pixel{R: v, G: v, B: v}
}

// neighborhoodMean computes the expected blurred pixel at (row, col) from
// an explicit list of in-bounds neighbours.
func neighborhoodMean(src *boxblur.PixelBuffer, row, col int) (boxblur.Pixel, int) {
	var r, g, b, n int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			y, x := row+dr, col+dc
			if y < 0 || y >= src.Height() || x < 0 || x >= src.Width() {
				continue
			}
			p := src.At(y, x)
			r += int(p.R)
			g += int(p.G)
			b += int(p.B)
			n++
		}
	}
	return boxblur.Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}, n
}

// blurOrFail runs BoxBlur and registers the result for release.
func blurOrFail(t *testing.T, src *boxblur.PixelBuffer) *boxblur.PixelBuffer {
	t.Helper()
	dst, err := BoxBlur(src)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	t.Cleanup(dst.Release)
	return dst
}
