// Package shape is the marshalling layer between an external text
// shaping library and glyphbuf's packed record buffers.
//
// The shaping work itself is done by go-text/typesetting's HarfBuzz
// implementation; shape wraps it behind the [Shaper] interface, writes
// its output into a [glyphbuf.Buffer] as ABI-layout records, and
// marshals host-native [Glyph] values back out of the buffer's views.
//
//	font, err := shape.NewFont(ttfData)
//	if err != nil { ... }
//
//	buf := glyphbuf.NewBuffer()
//	defer buf.Release()
//	if err := shape.Shape(buf, "Hello", font, 16); err != nil { ... }
//
//	glyphs := shape.Glyphs(buf, "Hello", shape.DirectionLTR)
//
// For mixed-script or bidirectional text, split the input with
// [Segmenter] first and shape each run separately.
package shape
