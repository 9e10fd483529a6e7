// Package glyphbuf provides packed shaped-glyph buffers and bounded views
// over foreign glyph-record arrays.
//
// # Overview
//
// Text shaping libraries report their output as two parallel arrays of
// fixed-size records: per-glyph identity/cluster data and per-glyph
// advance/offset data. glyphbuf defines Go equivalents of those records
// with the exact 20-byte layout of the native ABI, so the same bytes can
// be read whether they arrive as a raw pointer (FFI), a byte slice
// (wasm linear memory, IPC), or a host-owned [Buffer].
//
// # Foreign arrays
//
// When a shaping call hands back a base pointer and a glyph count,
// construct a view once and index it like any Go slice:
//
//	infos := glyphbuf.Infos(unsafe.Pointer(infoBase), int(count))
//	positions := glyphbuf.Positions(unsafe.Pointer(posBase), int(count))
//	for i := range infos {
//		gid := infos[i].Codepoint
//		adv := positions[i].XAdvance
//		_, _ = gid, adv
//	}
//
// The view aliases foreign memory: it is valid only while the owning
// shaping result is alive and unmodified. All indexing is bounds-checked
// by the language. [InfoAt] and [PositionAt] expose the raw unchecked
// address computation for callers that manage bounds themselves.
//
// # Host buffers
//
// [Buffer] is a host-owned shaping result with the same record layout.
// The shape subpackage fills one from a shaping call and marshals glyphs
// back out of it.
//
// # Logging
//
// glyphbuf produces no log output by default. Call [SetLogger] with a
// *slog.Logger to enable diagnostics.
package glyphbuf
