package glyphbuf

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/glyphbuf/internal/layout"
)

// The byte codec serves foreign memory that arrives as bytes rather than
// a typed pointer: wasm linear memory, IPC buffers, snapshots. Records
// are little-endian with the same 20-byte layout as the in-memory
// structs; the private ABI words are written as zero and ignored on
// decode.

// AppendInfos appends the encoding of infos to dst and returns the
// extended slice.
func AppendInfos(dst []byte, infos []GlyphInfo) []byte {
	for i := range infos {
		g := &infos[i]
		dst = binary.LittleEndian.AppendUint32(dst, g.Codepoint)
		dst = binary.LittleEndian.AppendUint32(dst, g.Mask)
		dst = binary.LittleEndian.AppendUint32(dst, g.Cluster)
		dst = append(dst, 0, 0, 0, 0, 0, 0, 0, 0)
	}
	return dst
}

// AppendPositions appends the encoding of positions to dst and returns
// the extended slice.
func AppendPositions(dst []byte, positions []GlyphPosition) []byte {
	for i := range positions {
		g := &positions[i]
		dst = binary.LittleEndian.AppendUint32(dst, uint32(g.XAdvance))
		dst = binary.LittleEndian.AppendUint32(dst, uint32(g.YAdvance))
		dst = binary.LittleEndian.AppendUint32(dst, uint32(g.XOffset))
		dst = binary.LittleEndian.AppendUint32(dst, uint32(g.YOffset))
		dst = append(dst, 0, 0, 0, 0)
	}
	return dst
}

// DecodeInfos decodes n GlyphInfo records from src. The records are
// copied out; src may be reused afterwards. Unlike the pointer views,
// the count is validated against the buffer length before any record is
// read: a short buffer returns an error wrapping [ErrShortBuffer].
func DecodeInfos(src []byte, n int) ([]GlyphInfo, error) {
	if err := checkCount(len(src), n, layout.InfoSize, "infos"); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	infos := make([]GlyphInfo, n)
	for i := range infos {
		rec := src[i*layout.InfoSize:]
		infos[i].Codepoint = binary.LittleEndian.Uint32(rec[layout.InfoOffCodepoint:])
		infos[i].Mask = binary.LittleEndian.Uint32(rec[layout.InfoOffMask:])
		infos[i].Cluster = binary.LittleEndian.Uint32(rec[layout.InfoOffCluster:])
	}
	return infos, nil
}

// DecodePositions decodes n GlyphPosition records from src. Same
// contract as [DecodeInfos].
func DecodePositions(src []byte, n int) ([]GlyphPosition, error) {
	if err := checkCount(len(src), n, layout.PositionSize, "positions"); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	positions := make([]GlyphPosition, n)
	for i := range positions {
		rec := src[i*layout.PositionSize:]
		positions[i].XAdvance = int32(binary.LittleEndian.Uint32(rec[layout.PositionOffXAdvance:]))
		positions[i].YAdvance = int32(binary.LittleEndian.Uint32(rec[layout.PositionOffYAdvance:]))
		positions[i].XOffset = int32(binary.LittleEndian.Uint32(rec[layout.PositionOffXOffset:]))
		positions[i].YOffset = int32(binary.LittleEndian.Uint32(rec[layout.PositionOffYOffset:]))
	}
	return positions, nil
}

// checkCount validates a record count against the available bytes.
func checkCount(have, n, recordSize int, kind string) error {
	if n < 0 {
		return fmt.Errorf("glyphbuf: decode %d %s: %w", n, kind, ErrNegativeCount)
	}
	if need := n * recordSize; have < need {
		return fmt.Errorf("glyphbuf: decode %d %s: need %d bytes, have %d: %w",
			n, kind, need, have, ErrShortBuffer)
	}
	return nil
}
