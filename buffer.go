package glyphbuf

import "sync"

// Buffer is a host-owned shaping result: parallel packed arrays of
// GlyphInfo and GlyphPosition records, one pair per output glyph.
//
// A Buffer plays the owner role the native shaping library assigns to
// its result object — views returned by [Buffer.Infos] and
// [Buffer.Positions] are valid until the buffer is next appended to,
// reset, or released.
//
// A Buffer is not safe for concurrent mutation. Concurrent reads of a
// settled buffer need no coordination.
type Buffer struct {
	infos     []GlyphInfo
	positions []GlyphPosition
}

// bufferPool recycles Buffers across shaping calls. Shaping output is
// short-lived and bursty, so pooling the backing arrays avoids
// reallocating them per call.
var bufferPool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// maxPooledGlyphs caps the capacity of buffers returned to the pool, so
// one pathological run does not pin a huge backing array forever.
const maxPooledGlyphs = 4096

// NewBuffer returns an empty Buffer, reusing a pooled one when
// available.
func NewBuffer() *Buffer {
	b := bufferPool.Get().(*Buffer)
	b.Reset()
	return b
}

// Release returns b to the pool. b and any views taken from it are
// invalid after Release.
func (b *Buffer) Release() {
	if cap(b.infos) > maxPooledGlyphs {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}

// Append adds one glyph record pair.
func (b *Buffer) Append(info GlyphInfo, pos GlyphPosition) {
	b.infos = append(b.infos, info)
	b.positions = append(b.positions, pos)
}

// Grow ensures capacity for n additional glyphs.
func (b *Buffer) Grow(n int) {
	if n <= 0 {
		return
	}
	if need := len(b.infos) + n; need > cap(b.infos) {
		infos := make([]GlyphInfo, len(b.infos), need)
		copy(infos, b.infos)
		b.infos = infos
	}
	if need := len(b.positions) + n; need > cap(b.positions) {
		positions := make([]GlyphPosition, len(b.positions), need)
		copy(positions, b.positions)
		b.positions = positions
	}
}

// Len returns the glyph count.
func (b *Buffer) Len() int { return len(b.infos) }

// Infos returns the identity records. The slice aliases the buffer's
// storage; see the Buffer doc for its lifetime.
func (b *Buffer) Infos() []GlyphInfo { return b.infos }

// Positions returns the position records. Same lifetime as
// [Buffer.Infos].
func (b *Buffer) Positions() []GlyphPosition { return b.positions }

// Reset empties the buffer, keeping its backing arrays.
func (b *Buffer) Reset() {
	b.infos = b.infos[:0]
	b.positions = b.positions[:0]
}

// AppendEncoded appends the byte encoding of the buffer's records to
// dst: all infos, then all positions. Decode with [DecodeInfos] and
// [DecodePositions] using [Buffer.Len] records each.
func (b *Buffer) AppendEncoded(dst []byte) []byte {
	dst = AppendInfos(dst, b.infos)
	return AppendPositions(dst, b.positions)
}
