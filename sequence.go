package vectorcodec

// This file holds the block-sequence plumbing shared by the full and quick
// schemes: the header/payload buffer layout of §4.7 and the exact-width
// little-endian payload read/write primitives. The final-block zero-padding
// of §4.6 lives in vector.go (loadBlock, storeBlock, zeroFrom). Unlike the original SIMD kernel, which writes a
// full 4-byte word per lane and relies on 3 bytes of trailing slack to
// absorb the overrun (§9, "UB hazards to avoid in a safer language"),
// these primitives write and read exactly bytesEmitted bytes — the
// portable alternative the spec explicitly sanctions at a small cost to
// throughput.

// writePayload appends one lane's trimmed residual to dst at cursor using
// exactly width (1..4) little-endian bytes, and returns the advanced
// cursor.
func writePayload(dst []byte, cursor int, value uint32, width int) int {
	for i := 0; i < width; i++ {
		dst[cursor+i] = byte(value >> (8 * uint(i)))
	}
	return cursor + width
}

// readPayload reads exactly width (1..4) little-endian bytes from src at
// cursor, zero-extending to 32 bits, and returns the value and the
// advanced cursor.
func readPayload(src []byte, cursor int, width int) (uint32, int) {
	var value uint32
	for i := 0; i < width; i++ {
		value |= uint32(src[cursor+i]) << (8 * uint(i))
	}
	return value, cursor + width
}

// sequenceLayout describes where a given buffer's header and payload
// regions begin, per the interleaved layout of §4.7: headers are
// prefix-contiguous starting at offset 0, payloads are suffix-contiguous
// immediately after them.
//
// §4.7 states the payload region starts at ceil(valueCount/2) bytes,
// reasoning that this is exactly headerBytes times the block count. That
// identity only holds when valueCount mod laneCount is 0 or 7; for any
// other length the true header region (headerBytes per block, including
// the zero-padded final block) runs up to 3 bytes past ceil(valueCount/2),
// which would let a block's header overwrite already-written payload bytes
// of an earlier block. This implementation sizes the header region exactly
// (headerBytes * blockCount) instead, which is identical to ceil(n/2) for
// every n used in this codec's worked examples and never collides.
func newSequenceLayout(valueCount int) sequenceLayout {
	return sequenceLayout{
		headerCursor:  0,
		payloadCursor: headerBytes * blockCount(valueCount),
	}
}

type sequenceLayout struct {
	headerCursor  int
	payloadCursor int
}
