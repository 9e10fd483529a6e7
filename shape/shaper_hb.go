package shape

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphbuf"
)

// HBShaper shapes text with go-text/typesetting's HarfBuzz
// implementation and writes the output into packed glyph buffers.
// It supports the full OpenType feature set: ligatures, kerning,
// contextual alternates, right-to-left text, and complex scripts.
//
// HBShaper is safe for concurrent use. The HarfbuzzShaper instances are
// pooled via sync.Pool since they are not concurrent-safe; the parsed
// font inside [Font] is read-only and shared, and a lightweight
// font.Face is created per Shape call (font.Face is NOT safe for
// concurrent use).
type HBShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	// HarfbuzzShaper has internal mutable state (buffer) and is NOT safe
	// for concurrent use, but reusing across sequential calls is
	// efficient.
	shaperPool sync.Pool

	config config
}

// NewHBShaper creates a new HBShaper.
func NewHBShaper(opts ...Option) *HBShaper {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return &HBShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		config: c,
	}
}

// Shape implements the Shaper interface.
func (s *HBShaper) Shape(buf *glyphbuf.Buffer, text string, fnt *Font, size float64, dir Direction, script Script) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if fnt == nil || fnt.font == nil {
		return ErrNilFont
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if script == ScriptInvalid {
		script = detectScript(runes)
	}

	gtDir := mapDirection(dir)

	// font.NewFace is cheap: it wraps the thread-safe *Font and
	// initializes per-face glyph caches.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: gtDir,
		Face:      font.NewFace(fnt.font),
		Size:      floatToFixed(size),
		Script:    language.Script(script),
		Language:  s.config.language,
	}

	// Get a HarfbuzzShaper from the pool (not concurrent-safe, so each
	// goroutine needs its own instance).
	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	appendRecords(buf, output.Glyphs, text, runes, gtDir)

	glyphbuf.Logger().Debug("shaped run",
		"runes", len(runes), "glyphs", len(output.Glyphs),
		"dir", dir.String(), "script", script.String())
	return nil
}

// appendRecords converts the shaping output into packed records.
// Cluster indices are converted from rune indices to byte indices so
// they slice the original string directly.
func appendRecords(buf *glyphbuf.Buffer, glyphs []shaping.Glyph, text string, runes []rune, dir di.Direction) {
	if len(glyphs) == 0 {
		return
	}

	byteOffsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += len(string(r))
	}
	byteOffsets[len(runes)] = len(text)

	buf.Grow(len(glyphs))
	for _, g := range glyphs {
		cluster := g.TextIndex()
		if cluster < 0 {
			cluster = 0
		} else if cluster > len(runes) {
			cluster = len(runes)
		}

		info := glyphbuf.GlyphInfo{
			Codepoint: uint32(g.GlyphID),
			Cluster:   uint32(byteOffsets[cluster]),
		}
		pos := glyphbuf.GlyphPosition{
			XOffset: int32(g.XOffset),
			YOffset: int32(g.YOffset),
		}
		if dir.IsVertical() {
			pos.YAdvance = int32(g.Advance)
		} else {
			pos.XAdvance = int32(g.Advance)
		}
		buf.Append(info, pos)
	}
}

// mapDirection converts our Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script
// text, split runs with Segmenter before shaping.
func detectScript(runes []rune) Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return Script(language.LookupScript(r))
	}
	glyphbuf.Logger().Warn("script detection found no non-space rune, using Latin")
	return ScriptLatin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply
// by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
