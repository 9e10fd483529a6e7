package shape

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphbuf"
)

// testFont parses Go Regular once per test. Go Regular has Latin,
// Cyrillic, and Greek glyphs, including kerning tables.
func testFont(t *testing.T) *Font {
	t.Helper()
	fnt, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse test font: %v", err)
	}
	return fnt
}

func TestHBShaper_BasicLatin(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(buf, "Hello", fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if buf.Len() != 5 {
		t.Fatalf("Shape(\"Hello\"): got %d glyphs, want 5", buf.Len())
	}

	infos := buf.Infos()
	positions := buf.Positions()
	for i := range infos {
		if infos[i].Codepoint == 0 {
			t.Errorf("glyph %d: Codepoint = 0 (.notdef), want a real glyph", i)
		}
		if positions[i].XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance = %d, want > 0", i, positions[i].XAdvance)
		}
		if positions[i].YAdvance != 0 {
			t.Errorf("glyph %d: YAdvance = %d, want 0 for horizontal text", i, positions[i].YAdvance)
		}
	}

	// Clusters are byte offsets into the source text, increasing for
	// one-glyph-per-character Latin.
	for i := 1; i < len(infos); i++ {
		if infos[i].Cluster <= infos[i-1].Cluster {
			t.Errorf("glyph %d: Cluster %d not increasing (prev %d)",
				i, infos[i].Cluster, infos[i-1].Cluster)
		}
	}
}

func TestHBShaper_VariousText(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	tests := []struct {
		name    string
		text    string
		wantLen int
	}{
		{"single char", "A", 1},
		{"word", "Hello", 5},
		{"with space", "Hello World", 11},
		{"numbers", "12345", 5},
		{"punctuation", "Hello, World!", 13},
		{"cyrillic", "Привет", 6},
		{"greek", "αβγ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := glyphbuf.NewBuffer()
			defer buf.Release()

			if err := shaper.Shape(buf, tt.text, fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
				t.Fatalf("Shape(%q): %v", tt.text, err)
			}
			if buf.Len() != tt.wantLen {
				t.Errorf("Shape(%q): got %d glyphs, want %d", tt.text, buf.Len(), tt.wantLen)
			}
		})
	}
}

func TestHBShaper_EmptyText(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(buf, "", fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape(\"\"): %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Shape(\"\"): got %d glyphs, want 0", buf.Len())
	}
}

func TestHBShaper_NilArguments(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(nil, "x", fnt, 16, DirectionLTR, ScriptInvalid); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("Shape(nil buffer) error = %v, want ErrNilBuffer", err)
	}
	if err := shaper.Shape(buf, "x", nil, 16, DirectionLTR, ScriptInvalid); !errors.Is(err, ErrNilFont) {
		t.Errorf("Shape(nil font) error = %v, want ErrNilFont", err)
	}
}

func TestHBShaper_AppendsAcrossRuns(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(buf, "ab", fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if err := shaper.Shape(buf, "cd", fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape: %v", err)
	}

	// Shaping appends; it does not reset the buffer between runs.
	if buf.Len() != 4 {
		t.Errorf("after two runs: Len = %d, want 4", buf.Len())
	}
}

func TestHBShaper_MarshalledGlyphsCoverText(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	text := "Hello World"
	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(buf, text, fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape: %v", err)
	}

	glyphs := Glyphs(buf, text, DirectionLTR)
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteString(g.Text)
	}
	if sb.String() != text {
		t.Errorf("cluster texts join to %q, want %q", sb.String(), text)
	}
}

func TestHBShaper_LargerSizeLargerAdvance(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper()

	advanceAt := func(size float64) int32 {
		buf := glyphbuf.NewBuffer()
		defer buf.Release()
		if err := shaper.Shape(buf, "m", fnt, size, DirectionLTR, ScriptInvalid); err != nil {
			t.Fatalf("Shape: %v", err)
		}
		x, _ := TotalAdvance(buf)
		return x
	}

	small := advanceAt(12)
	large := advanceAt(48)
	if large <= small {
		t.Errorf("advance at 48pt (%d) should exceed advance at 12pt (%d)", large, small)
	}
}

func TestHBShaper_WithLanguage(t *testing.T) {
	fnt := testFont(t)
	shaper := NewHBShaper(WithLanguage("tr"))

	buf := glyphbuf.NewBuffer()
	defer buf.Release()

	if err := shaper.Shape(buf, "Istanbul", fnt, 16, DirectionLTR, ScriptInvalid); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Shape with language option produced no glyphs")
	}
}

// stubShaper records calls for the registry tests.
type stubShaper struct {
	calls int
}

func (s *stubShaper) Shape(buf *glyphbuf.Buffer, text string, font *Font, size float64, dir Direction, script Script) error {
	s.calls++
	return nil
}

func TestSetShaper(t *testing.T) {
	t.Cleanup(func() { SetShaper(nil) })

	stub := &stubShaper{}
	SetShaper(stub)

	if GetShaper() != Shaper(stub) {
		t.Fatal("GetShaper() did not return the shaper set via SetShaper")
	}

	if err := Shape(nil, "x", nil, 16); err != nil {
		t.Fatalf("Shape via stub: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("stub calls = %d, want 1", stub.calls)
	}

	// nil resets to the default HBShaper.
	SetShaper(nil)
	if _, ok := GetShaper().(*HBShaper); !ok {
		t.Errorf("SetShaper(nil) installed %T, want *HBShaper", GetShaper())
	}
}
