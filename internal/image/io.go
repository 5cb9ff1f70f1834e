// Package image decodes input files into pixel buffers and writes pixel
// buffers out as PNG.
//
// Decoding accepts every format registered with the standard image package;
// importing this package registers PNG, JPEG, GIF, BMP, TIFF and WebP.
// Alpha is discarded: only the red, green and blue channels of the
// non-premultiplied color are kept. Encoding always produces an opaque PNG,
// whatever extension the destination carries.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	// imaging registers BMP and TIFF; WebP is added here.
	_ "golang.org/x/image/webp"

	"github.com/gogpu/boxblur"
)

// I/O errors.
var (
	// ErrDecode is returned when an input cannot be read or parsed.
	ErrDecode = errors.New("image: decode failed")

	// ErrEncode is returned when a buffer cannot be serialized or written.
	ErrEncode = errors.New("image: encode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load reads and decodes the image at path. The returned buffer is tagged
// with dest and owned by the caller.
func Load(path, dest string) (*boxblur.PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, dest)
}

// LoadFromBytes decodes an in-memory image.
func LoadFromBytes(data []byte, dest string) (*boxblur.PixelBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyData)
	}
	return Decode(bytes.NewReader(data), dest)
}

// Decode decodes an image from r, auto-detecting the format and applying
// EXIF orientation, and converts it to an RGB buffer tagged with dest.
func Decode(r io.Reader, dest string) (*boxblur.PixelBuffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	buf, err := FromStdImage(img, dest)
	if errors.Is(err, boxblur.ErrInvalidDimensions) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return buf, err
}

// FromStdImage converts img into a new RGB buffer tagged with dest.
// Colors are un-premultiplied before the alpha channel is dropped.
func FromStdImage(img image.Image, dest string) (*boxblur.PixelBuffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := boxblur.NewPixelBuffer(width, height, dest)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pix := buf.Pixels()
	for y := range height {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := range width {
			off := x * 4
			pix[y*width+x] = boxblur.Pixel{R: row[off], G: row[off+1], B: row[off+2]}
		}
	}
	return buf, nil
}

// ToStdImage converts b to an opaque *image.NRGBA.
func ToStdImage(b *boxblur.PixelBuffer) *image.NRGBA {
	width, height := b.Width(), b.Height()
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := range height {
		dstStart := y * nrgba.Stride
		for x := range width {
			p := b.At(y, x)
			off := dstStart + x*4
			nrgba.Pix[off] = p.R
			nrgba.Pix[off+1] = p.G
			nrgba.Pix[off+2] = p.B
			nrgba.Pix[off+3] = 255 // Opaque
		}
	}
	return nrgba
}

// Encode writes b to w as PNG.
func Encode(w io.Writer, b *boxblur.PixelBuffer) error {
	if b == nil || b.Released() {
		return boxblur.ErrInvalidInput
	}
	if err := imaging.Encode(w, ToStdImage(b), imaging.PNG); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// EncodeToBytes encodes b as PNG and returns the bytes.
func EncodeToBytes(b *boxblur.PixelBuffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes b as PNG to b.Dest(), regardless of the file extension.
// A partially written file is removed if encoding fails.
func Save(b *boxblur.PixelBuffer) error {
	if b == nil || b.Released() {
		return boxblur.ErrInvalidInput
	}

	path := filepath.Clean(b.Dest())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create file: %w", ErrEncode, err)
	}

	if err := Encode(f, b); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: close file: %w", ErrEncode, err)
	}
	return nil
}
