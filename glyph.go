package glyphbuf

// GlyphID is a glyph index within a font. Before shaping the same slot
// holds a Unicode code point, which is why the underlying type is uint32
// rather than the uint16 most fonts need.
type GlyphID uint32

// GlyphInfo is the per-glyph identity record produced by a shaping call.
// Its layout matches the shaping library's native record
// (hb_glyph_info_t): three public 32-bit fields followed by two private
// ones, 20 bytes total. Do not reorder or resize fields; foreign readers
// depend on the exact layout.
type GlyphInfo struct {
	// Codepoint holds a Unicode code point before shaping and a glyph
	// index into the font after shaping.
	Codepoint uint32

	// Mask carries the shaping library's glyph flags.
	Mask uint32

	// Cluster is the index into the source text of the character this
	// glyph starts at. Several glyphs may share a cluster (ligatures),
	// and one character may produce several glyphs (decomposition).
	Cluster uint32

	// Private scratch words reserved by the native ABI.
	var1, var2 uint32
}

// GlyphID returns the record's codepoint as a GlyphID. Only meaningful
// after shaping.
func (g *GlyphInfo) GlyphID() GlyphID { return GlyphID(g.Codepoint) }

// GlyphPosition is the per-glyph advance/offset record produced by a
// shaping call. Layout matches hb_glyph_position_t: four public 32-bit
// fields and one private word, 20 bytes total. All values are 26.6 fixed
// point in font units, the representation the shaping library itself
// uses.
type GlyphPosition struct {
	// XAdvance is how far the pen moves right after drawing this glyph.
	XAdvance int32

	// YAdvance is how far the pen moves down; nonzero only for vertical
	// text.
	YAdvance int32

	// XOffset shifts the glyph right relative to the pen position
	// without affecting the advance.
	XOffset int32

	// YOffset shifts the glyph up relative to the pen position without
	// affecting the advance.
	YOffset int32

	// Private scratch word reserved by the native ABI.
	var1 uint32
}
