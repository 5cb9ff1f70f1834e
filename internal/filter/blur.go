package filter

import (
	"github.com/gogpu/boxblur"
)

// Box is the 3x3 box blur. The zero value is ready to use.
type Box struct{}

// Apply blurs src into a new buffer. See BoxBlur.
func (Box) Apply(src *boxblur.PixelBuffer) (*boxblur.PixelBuffer, error) {
	return BoxBlur(src)
}

// BoxBlur returns a new buffer in which every pixel is the per-channel mean
// of the in-bounds cells of the 3x3 neighbourhood around the corresponding
// source pixel. Sums are divided with truncating integer division.
//
// The result has the same width, height and destination as src; src is
// left untouched.
//
// Returns boxblur.ErrInvalidInput if src is nil or released, and
// boxblur.ErrAllocation if the destination cannot be allocated.
func BoxBlur(src *boxblur.PixelBuffer) (*boxblur.PixelBuffer, error) {
	if src == nil || src.Released() {
		return nil, boxblur.ErrInvalidInput
	}

	dst, err := boxblur.Copy(src)
	if err != nil {
		return nil, err
	}

	width := src.Width()
	height := src.Height()
	srcPix := src.Pixels()
	dstPix := dst.Pixels()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			var r, g, b, count int

			for _, o := range boxNeighborhood {
				nr, nc := row+o.dr, col+o.dc
				if !inBounds(nr, nc, width, height) {
					continue
				}

				p := srcPix[nr*width+nc]
				r += int(p.R)
				g += int(p.G)
				b += int(p.B)
				count++
			}

			// count >= 1: the centre cell is always in bounds.
			dstPix[row*width+col] = boxblur.Pixel{
				R: uint8(r / count),
				G: uint8(g / count),
				B: uint8(b / count),
			}
		}
	}

	return dst, nil
}
