package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")

	// ErrNilFont is returned when a shaping call is given a nil font.
	ErrNilFont = errors.New("shape: nil font")

	// ErrNilBuffer is returned when a shaping call is given a nil
	// output buffer.
	ErrNilBuffer = errors.New("shape: nil output buffer")
)
