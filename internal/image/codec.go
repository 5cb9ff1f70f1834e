package image

import "github.com/gogpu/boxblur"

// Codec reads image files and writes PNG files. The zero value is ready
// to use.
type Codec struct{}

// Load decodes the file at path into a buffer tagged with dest.
func (Codec) Load(path, dest string) (*boxblur.PixelBuffer, error) {
	return Load(path, dest)
}

// Save writes b as PNG to its destination.
func (Codec) Save(b *boxblur.PixelBuffer) error {
	return Save(b)
}
