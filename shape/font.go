package shape

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Font is a parsed font handle shared across shaping calls.
//
// Font wraps the shaping library's thread-safe font object; the
// per-call mutable face is created inside each Shape call, so a Font is
// safe for concurrent use.
type Font struct {
	font *font.Font
}

// NewFont parses TTF or OTF font data. The data slice is retained by
// the shaping library and must not be modified afterwards.
func NewFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shape: parse font: %w", err)
	}
	return &Font{font: face.Font}, nil
}

// NewFontFromFile loads a Font from a font file path.
func NewFontFromFile(path string) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shape: failed to read font file: %w", err)
	}
	return NewFont(data)
}
