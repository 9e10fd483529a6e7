package glyphbuf

import "unsafe"

// Infos constructs a bounds-checked view over a foreign GlyphInfo array.
//
// base is the address of the first record and n the element count, both
// exactly as reported by the shaping call that produced the array. The
// returned slice aliases the foreign memory — no records are copied —
// so it is valid only while the owning shaping result is alive and has
// not been mutated or freed, and it must never be appended to or grown.
//
// Indexing the returned slice is ordinary Go indexing: out-of-range
// access panics instead of reading unowned memory. A nil base or a
// non-positive count yields a nil view.
func Infos(base unsafe.Pointer, n int) []GlyphInfo {
	if base == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*GlyphInfo)(base), n)
}

// Positions constructs a bounds-checked view over a foreign
// GlyphPosition array. Same contract as [Infos].
func Positions(base unsafe.Pointer, n int) []GlyphPosition {
	if base == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*GlyphPosition)(base), n)
}

// InfoAt returns the address of the i-th record of a foreign GlyphInfo
// array, computed as base plus i times the record size. No bounds check
// is performed: the caller guarantees 0 <= i < the element count reported
// by the shaping call, and an out-of-range index reads unowned memory.
//
// Prefer [Infos]; InfoAt exists for callers indexing an array whose
// length is tracked elsewhere.
func InfoAt(base unsafe.Pointer, i int) *GlyphInfo {
	return (*GlyphInfo)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(GlyphInfo{})))
}

// PositionAt returns the address of the i-th record of a foreign
// GlyphPosition array. Same contract as [InfoAt].
func PositionAt(base unsafe.Pointer, i int) *GlyphPosition {
	return (*GlyphPosition)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(GlyphPosition{})))
}
