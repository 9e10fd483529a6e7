// Package layout records the wire layout of the packed glyph records.
//
// The sizes and offsets here are fixed by the shaping library's native
// ABI, not by the Go compiler; the root package asserts in tests that
// the Go struct layouts agree with this table.
package layout

// GlyphInfo record layout.
const (
	InfoSize  = 20
	InfoAlign = 4

	InfoOffCodepoint = 0
	InfoOffMask      = 4
	InfoOffCluster   = 8
)

// GlyphPosition record layout.
const (
	PositionSize  = 20
	PositionAlign = 4

	PositionOffXAdvance = 0
	PositionOffYAdvance = 4
	PositionOffXOffset  = 8
	PositionOffYOffset  = 12
)

// AlignTo rounds n up to the next multiple of align. align must be a
// power of two.
func AlignTo(n, align uint32) uint32 {
	return (n + align - 1) &^ (align - 1)
}
