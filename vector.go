package vectorcodec

import (
	"math"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// lanes8 holds the eight 32-bit lanes of one block, interpreted as raw bit
// patterns rather than IEEE-754 floats. All arithmetic on lanes is modular
// 2^32, matching the wrapping add/sub semantics of the original codec.
type lanes8 [laneCount]uint32

// hasVectorAcceleration reports whether the host CPU exposes the SIMD
// feature set the original implementation used for its 8-lane gather and
// CTZ/CLZ kernels. It is informational only: the lane loops in this package
// are scalar and produce identical output with or without it, mirroring
// the teacher's own fallback guarantee when its SIMD dispatch is disabled.
var hasVectorAcceleration bool

func init() {
	hasVectorAcceleration = cpu.X86.HasAVX2
}

// HasVectorAcceleration reports whether the running CPU advertises the
// instruction set the reference implementation's 8-lane kernels target.
// It does not change encode/decode behavior; this package always runs the
// portable scalar lane loop described in the codec's specification.
func HasVectorAcceleration() bool {
	return hasVectorAcceleration
}

// loadBlock reads up to laneCount float32 values starting at offset,
// bit-casting each to its uint32 pattern, and zero-pads any lanes beyond
// the input's end. It returns the number of real (non-padded) lanes.
func loadBlock(values []float32, offset int) (v lanes8, n int) {
	n = len(values) - offset
	if n > laneCount {
		n = laneCount
	}
	for k := 0; k < n; k++ {
		v[k] = math.Float32bits(values[offset+k])
	}
	return v, n
}

// storeBlock writes the first n lanes of v back to out starting at offset,
// converting each uint32 bit pattern back to a float32.
func storeBlock(out []float32, offset int, v lanes8, n int) {
	for k := 0; k < n; k++ {
		out[offset+k] = math.Float32frombits(v[k])
	}
}

func (v lanes8) add(w lanes8) lanes8 {
	var r lanes8
	for k := range v {
		r[k] = v[k] + w[k]
	}
	return r
}

func (v lanes8) sub(w lanes8) lanes8 {
	var r lanes8
	for k := range v {
		r[k] = v[k] - w[k]
	}
	return r
}

func (v lanes8) xor(w lanes8) lanes8 {
	var r lanes8
	for k := range v {
		r[k] = v[k] ^ w[k]
	}
	return r
}

// zeroFrom clears lanes [live, laneCount) in place. The final block of a
// sequence may have fewer than laneCount live values (§4.6); the unused
// lanes carry whatever the previous block left in them, which would
// otherwise make their residual an unbounded value instead of the zero
// Invariant 3 is happy to pay one byte for. Called on prior/xprior before
// they feed the delta/hash step for the last block.
func (v *lanes8) zeroFrom(live int) {
	for k := live; k < laneCount; k++ {
		v[k] = 0
	}
}

// trimmed holds the per-lane outcome of the trim-width computation of
// spec §4.2: the right-shifted (trailing-zero-byte-stripped) residual
// ready for masking and writing, plus the packed lz/tz codes and the
// resulting payload width in bytes for each lane.
type trimmed struct {
	shifted      lanes8
	lz           [laneCount]byte
	tz           [laneCount]byte
	bytesEmitted [laneCount]byte
}

// trimResiduals computes, for each lane of r, the number of trailing zero
// bytes (tz) and — after stripping them — the number of leading zero bytes
// of what remains, squeezed into a 2-bit lz code. bytesEmitted is always in
// {1,2,3,4}; a fully zero residual still emits one zero byte.
func trimResiduals(r lanes8) trimmed {
	var t trimmed
	for k := 0; k < laneCount; k++ {
		bitTZ := bits.TrailingZeros32(r[k])
		byteTZ := bitTZ >> 3
		byteTZ -= byteTZ >> 2
		t.tz[k] = byte(byteTZ)

		shifted := r[k] >> (8 * uint(byteTZ))
		t.shifted[k] = shifted

		bitLZ := bits.LeadingZeros32(shifted)
		byteLZ := bitLZ >> 3
		if byteLZ > 3 {
			byteLZ = 3
		}
		t.lz[k] = byte(byteLZ)
		t.bytesEmitted[k] = byte(bytesEmittedForCode(byte(byteLZ)))
	}
	return t
}
