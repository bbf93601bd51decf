package lines

import "errors"

var (
	// ErrInvalidArgument is returned for point counts outside [2, MaxPointCount)
	// and for parallel slices of different lengths.
	ErrInvalidArgument = errors.New("lines: invalid argument")

	// ErrMissingResource is returned when a Factory cannot provide what a
	// renderable needs to be drawn, such as its material or its target image.
	ErrMissingResource = errors.New("lines: missing resource")
)
