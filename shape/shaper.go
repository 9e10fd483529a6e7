package shape

import (
	"sync"

	"github.com/gogpu/glyphbuf"
)

// Shaper turns text into packed glyph records.
// The default implementation is [HBShaper]; SetShaper installs an
// alternative (a stub for tests, or a wrapper over a different shaping
// backend).
type Shaper interface {
	// Shape shapes text with the font at the given size (in points) and
	// appends one info/position record pair per output glyph to buf.
	// script may be ScriptInvalid to have the shaper detect it from the
	// text. The text should be a single run of uniform direction and
	// script; use Segmenter to split mixed text first.
	Shape(buf *glyphbuf.Buffer, text string, font *Font, size float64, dir Direction, script Script) error
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewHBShaper()
)

// SetShaper sets the global shaper used by [Shape].
// Pass nil to reset to the default HBShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewHBShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that shapes a left-to-right run with
// the global shaper, detecting the script from the text.
func Shape(buf *glyphbuf.Buffer, text string, font *Font, size float64) error {
	return GetShaper().Shape(buf, text, font, size, DirectionLTR, ScriptInvalid)
}
