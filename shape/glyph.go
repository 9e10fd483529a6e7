package shape

import "github.com/gogpu/glyphbuf"

// Glyph is one shaped glyph marshalled out of a packed buffer into
// host-native form. Advances and offsets are 26.6 fixed point, as
// stored in the records.
type Glyph struct {
	// ID is the glyph index in the font.
	ID glyphbuf.GlyphID

	// Cluster is the byte index into the source text of the character
	// this glyph starts at.
	Cluster uint32

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance int32

	// YAdvance is the vertical advance (for vertical text).
	YAdvance int32

	// XOffset, YOffset shift the glyph relative to the pen position
	// without affecting the advance.
	XOffset int32
	YOffset int32

	// Text is the slice of the source text covered by this glyph's
	// cluster.
	Text string
}

// Glyphs copies records out of buf's views into host-native Glyph
// values and attributes each glyph the slice of text its cluster
// covers.
//
// text and dir must be the string and direction the buffer was shaped
// with. For right-to-left and bottom-to-top runs the records are in
// visual order with decreasing cluster values, so text attribution runs
// backwards.
func Glyphs(buf *glyphbuf.Buffer, text string, dir Direction) []Glyph {
	if buf == nil || buf.Len() == 0 {
		return nil
	}

	infos := buf.Infos()
	positions := buf.Positions()
	reverse := dir == DirectionRTL || dir == DirectionBTT

	glyphs := make([]Glyph, len(infos))
	for i := range infos {
		info := &infos[i]
		pos := &positions[i]
		glyphs[i] = Glyph{
			ID:       info.GlyphID(),
			Cluster:  info.Cluster,
			XAdvance: pos.XAdvance,
			YAdvance: pos.YAdvance,
			XOffset:  pos.XOffset,
			YOffset:  pos.YOffset,
		}
		if reverse {
			if i != 0 {
				glyphs[i].Text = text[glyphs[i].Cluster:glyphs[i-1].Cluster]
			} else {
				glyphs[i].Text = text[glyphs[i].Cluster:]
			}
		} else if i != 0 {
			glyphs[i-1].Text = text[glyphs[i-1].Cluster:glyphs[i].Cluster]
		}
	}
	if !reverse && 0 < len(glyphs) {
		glyphs[len(glyphs)-1].Text = text[glyphs[len(glyphs)-1].Cluster:]
	}
	return glyphs
}

// TotalAdvance sums the advances of all records in buf, in 26.6 fixed
// point.
func TotalAdvance(buf *glyphbuf.Buffer) (x, y int32) {
	if buf == nil {
		return 0, 0
	}
	for _, pos := range buf.Positions() {
		x += pos.XAdvance
		y += pos.YAdvance
	}
	return x, y
}
