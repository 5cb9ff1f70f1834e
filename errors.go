package boxblur

import "errors"

// Sentinel errors for pixel buffer operations.
var (
	// ErrInvalidInput is returned when a buffer is required but nil or
	// already released.
	ErrInvalidInput = errors.New("boxblur: invalid input")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	// It matches ErrInvalidInput with errors.Is.
	ErrInvalidDimensions error = &dimensionsError{}

	// ErrAllocation is returned when a buffer would exceed the pixel limit.
	ErrAllocation = errors.New("boxblur: allocation failed")
)

type dimensionsError struct{}

func (*dimensionsError) Error() string {
	return "boxblur: invalid dimensions"
}

func (*dimensionsError) Is(target error) bool {
	return target == ErrInvalidInput
}
