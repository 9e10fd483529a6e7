package glyphbuf

import "errors"

// Sentinel errors for the glyphbuf package.
var (
	// ErrShortBuffer is returned when a byte buffer is too small for the
	// requested record count.
	ErrShortBuffer = errors.New("glyphbuf: buffer too short for record count")

	// ErrNegativeCount is returned when a negative record count is
	// requested.
	ErrNegativeCount = errors.New("glyphbuf: negative record count")
)
