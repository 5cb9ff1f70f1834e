package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/boxblur"
)

// Test helpers shared across pipeline tests.

var (
	errFakeDecode = errors.New("fake decode failure")
	errFakeEncode = errors.New("fake encode failure")
	errFakeFilter = errors.New("fake filter failure")
)

// memCodec is an in-memory Codec. Inputs are looked up by path; saved
// buffers are copied into out by destination.
type memCodec struct {
	inputs   map[string]*image.NRGBA
	failLoad map[string]bool
	failSave map[string]bool

	loads []string
	saves []string
	out   map[string][]boxblur.Pixel
}

func newMemCodec() *memCodec {
	return &memCodec{
		inputs:   make(map[string]*image.NRGBA),
		failLoad: make(map[string]bool),
		failSave: make(map[string]bool),
		out:      make(map[string][]boxblur.Pixel),
	}
}

func (c *memCodec) Load(path, dest string) (*boxblur.PixelBuffer, error) {
	c.loads = append(c.loads, path)
	img, ok := c.inputs[path]
	if !ok || c.failLoad[path] {
		return nil, errFakeDecode
	}
	b, err := boxblur.NewPixelBuffer(img.Rect.Dx(), img.Rect.Dy(), dest)
	if err != nil {
		return nil, err
	}
	for y := range b.Height() {
		for x := range b.Width() {
			px := img.NRGBAAt(x, y)
			b.Set(y, x, boxblur.Pixel{R: px.R, G: px.G, B: px.B})
		}
	}
	return b, nil
}

func (c *memCodec) Save(b *boxblur.PixelBuffer) error {
	if b == nil || b.Released() {
		return boxblur.ErrInvalidInput
	}
	c.saves = append(c.saves, b.Dest())
	if c.failSave[b.Dest()] {
		return errFakeEncode
	}
	c.out[b.Dest()] = append([]boxblur.Pixel(nil), b.Pixels()...)
	return nil
}

// failingFilter fails on the n-th call (zero-based) and delegates otherwise.
type failingFilter struct {
	next  Filter
	failN int
	calls int
}

func (f *failingFilter) Apply(src *boxblur.PixelBuffer) (*boxblur.PixelBuffer, error) {
	n := f.calls
	f.calls++
	if n == f.failN {
		return nil, errFakeFilter
	}
	return f.next.Apply(src)
}

// patternImage returns a w x h image whose colors depend on seed.
func patternImage(w, h, seed int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x*31 + y*7 + seed*13) % 256),
				G: uint8((x*3 + y*59 + seed) % 256),
				B: uint8((x*y + seed*101) % 256),
				A: 255,
			})
		}
	}
	return img
}

// expectedBlur computes the blurred pixels of img independently of the
// filter package.
func expectedBlur(img *image.NRGBA) []boxblur.Pixel {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]boxblur.Pixel, 0, w*h)
	for y := range h {
		for x := range w {
			var r, g, b, n int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !(image.Point{X: x + dx, Y: y + dy}).In(img.Rect) {
						continue
					}
					c := img.NRGBAAt(x+dx, y+dy)
					r += int(c.R)
					g += int(c.G)
					b += int(c.B)
					n++
				}
			}
			out = append(out, boxblur.Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)})
		}
	}
	return out
}

// writePNG writes img to dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// readPNG decodes the PNG at path into row-major pixels.
func readPNG(t *testing.T, path string) (pix []boxblur.Pixel, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, boxblur.Pixel{R: c.R, G: c.G, B: c.B})
		}
	}
	return pix, b.Dx(), b.Dy()
}

// checkNoLeak fails the test if the live buffer count moved.
func checkNoLeak(t *testing.T, before int64) {
	t.Helper()
	if got := boxblur.LiveBuffers(); got != before {
		t.Errorf("LiveBuffers() = %d after run, want %d", got, before)
	}
}

func equalPixels(a, b []boxblur.Pixel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
