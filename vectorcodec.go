// Package vectorcodec implements a lossless compression codec for dense
// arrays of 32-bit IEEE-754 single-precision floats.
//
// Values are processed eight at a time ("blocks"). Each block contributes a
// 4-byte header, interleaved ahead of a shared payload region, describing
// how many of the four middle bytes of each lane's residual were kept after
// trimming leading and trailing zero bytes. Two independent schemes are
// provided: the "full" scheme predicts each residual with a small hash
// table in addition to a delta predictor, and the "quick" scheme uses the
// delta predictor alone. The two schemes are not cross-compatible: bytes
// produced by one scheme's encoder only decode correctly with that same
// scheme's decoder.
//
// The codec is a pure, infallible, allocation-free core: it never returns
// an error, performs no I/O, and trusts the caller to size the destination
// buffer and pass a consistent value count to the decoder (see UpperBound
// and the *Safe wrappers in safe.go for a checked entry point built on top
// of this contract).
package vectorcodec

import "encoding/binary"

// laneCount is the number of 32-bit values processed per block.
const laneCount = 8

// headerBytes is the size in bytes of one block's header word.
const headerBytes = 4

// le is the fixed byte order of the wire format, regardless of host
// endianness.
var le = binary.LittleEndian

// UpperBound returns the maximum number of bytes EncodeFull or EncodeQuick
// can write for valueCount input values: one header nibble (4 bits) per
// lane plus up to 4 payload bytes per lane. This is a tight bound only
// when valueCount is a multiple of laneCount; for other counts, size the
// destination with conservativeBufferSize instead (see DESIGN.md).
func UpperBound(valueCount int) int {
	return (valueCount+1)/2 + valueCount*4
}

// blockCount returns the number of 8-value blocks needed to cover
// valueCount values, including a final zero-padded partial block.
func blockCount(valueCount int) int {
	return (valueCount + laneCount - 1) / laneCount
}

// packHeader interleaves eight 2-bit lz codes into the low half-word and
// eight 2-bit tz codes into the high half-word of a block header, per lane
// k at bits [2k, 2k+1] and [16+2k, 17+2k] respectively.
func packHeader(lz, tz [laneCount]byte) uint32 {
	var header uint32
	for k := 0; k < laneCount; k++ {
		header |= uint32(lz[k]&3) << (2 * k)
		header |= uint32(tz[k]&3) << (16 + 2*k)
	}
	return header
}

// unpackHeader is the exact inverse of packHeader.
func unpackHeader(header uint32) (lz, tz [laneCount]byte) {
	for k := 0; k < laneCount; k++ {
		lz[k] = byte((header >> (2 * k)) & 3)
		tz[k] = byte((header >> (16 + 2*k)) & 3)
	}
	return
}

// bytesEmittedForCode maps a 2-bit lz code directly to the number of
// payload bytes a lane occupies: code 0 keeps all 4 bytes, code 3 keeps
// just 1 (including the zero-residual case, where that single byte is
// 0x00).
func bytesEmittedForCode(lz byte) int {
	return 4 - int(lz)
}

// conservativeBufferSize returns a destination size that is always large
// enough for EncodeFull or EncodeQuick to write into without overrunning,
// regardless of input values: headerBytes plus 4 bytes per lane, for every
// block including the final padded one. Unlike UpperBound, which only
// holds when valueCount is a multiple of laneCount (see DESIGN.md), this
// bound is safe for every valueCount and is used where callers need that
// guarantee without knowing the count is block-aligned.
func conservativeBufferSize(valueCount int) int {
	return blockCount(valueCount) * (headerBytes + laneCount*4)
}
