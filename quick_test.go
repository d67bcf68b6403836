package vectorcodec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickEncodeDecodeEmpty(t *testing.T) {
	n := assertQuickRoundTrip(t, nil)
	assert.Equal(t, 0, n)
}

func TestQuickEncodeEightZeros(t *testing.T) {
	values := make([]float32, 8)
	dst := make([]byte, UpperBound(len(values)))
	n := EncodeQuick(values, dst)
	require.Equal(t, 12, n)
	assert.Equal(t, uint32(0xFFFFFFFF), le.Uint32(dst[0:4]))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, dst[4:12])

	assertQuickRoundTrip(t, values)
}

func TestQuickEncodeEightEqualOnes(t *testing.T) {
	values := make([]float32, 8)
	for k := range values {
		values[k] = 1.0
	}
	dst := make([]byte, UpperBound(len(values)))
	n := EncodeQuick(values, dst)
	require.Equal(t, 20, n)
	assert.Equal(t, uint32(0xAAAAAAAA), le.Uint32(dst[0:4]))
	for lane := 0; lane < 8; lane++ {
		off := 4 + lane*2
		assert.Equal(t, []byte{0x80, 0x3F}, dst[off:off+2], "lane %d payload", lane)
	}

	assertQuickRoundTrip(t, values)
}

func TestQuickEncodeDecodeShortBlock(t *testing.T) {
	assertQuickRoundTrip(t, []float32{1, -2, 3.5, 0, 6.25, 7})
}

func TestQuickEncodeDecodeSingleValue(t *testing.T) {
	assertQuickRoundTrip(t, []float32{123.456})
}

func TestQuickEncodeDecodeMultiBlock(t *testing.T) {
	values := make([]float32, 37)
	for i := range values {
		values[i] = float32(i) * 1.5
	}
	assertQuickRoundTrip(t, values)
}

// TestQuickEncodeIsWithinUpperBound checks Property 3 for the value counts
// where UpperBound is a tight bound: multiples of laneCount. See
// TestQuickEncodePartialBlockStaysWithinConservativeBound for counts that
// leave a partial final block, where UpperBound itself cannot be relied on
// (see DESIGN.md).
func TestQuickEncodeIsWithinUpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 8, 64, 1000} {
		values := randomFloats(rng, n)
		dst := make([]byte, UpperBound(n))
		k := EncodeQuick(values, dst)
		assert.LessOrEqual(t, k, UpperBound(n), "n=%d", n)
	}
}

// TestQuickEncodePartialBlockStaysWithinConservativeBound covers the value
// counts UpperBound cannot bound, using conservativeBufferSize instead.
func TestQuickEncodePartialBlockStaysWithinConservativeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, n := range []int{1, 7, 9, 63, 65, 1000 + 1} {
		values := randomFloats(rng, n)
		dst := make([]byte, conservativeBufferSize(n))
		k := EncodeQuick(values, dst)
		assert.LessOrEqual(t, k, conservativeBufferSize(n), "n=%d", n)
	}
}

func TestQuickEncodeIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	values := randomFloats(rng, 200)
	dst1 := make([]byte, UpperBound(len(values)))
	dst2 := make([]byte, UpperBound(len(values)))
	n1 := EncodeQuick(values, dst1)
	n2 := EncodeQuick(values, dst2)
	require.Equal(t, n1, n2)
	assert.Equal(t, dst1[:n1], dst2[:n2])
}

func TestQuickDecodePartialBlockWritesOnlyLiveLanes(t *testing.T) {
	values := []float32{1, 2, 3}
	dst := make([]byte, conservativeBufferSize(len(values)))
	n := EncodeQuick(values, dst)
	out := make([]float32, 5)
	for i := range out {
		out[i] = -99
	}
	DecodeQuick(dst[:n], len(values), out)
	assert.Equal(t, []float32{1, 2, 3, -99, -99}, out)
}

func TestQuickHasNoHashPredictorSideEffects(t *testing.T) {
	// The quick scheme must not depend on the predictor table at all: two
	// independent encodes of unrelated data must not influence each other
	// (there is no package-level shared state to leak through).
	rng := rand.New(rand.NewSource(3))
	a := randomFloats(rng, 64)
	b := randomFloats(rng, 64)

	dstA := make([]byte, UpperBound(len(a)))
	nA := EncodeQuick(a, dstA)
	dstB := make([]byte, UpperBound(len(b)))
	nB := EncodeQuick(b, dstB)

	dstA2 := make([]byte, UpperBound(len(a)))
	nA2 := EncodeQuick(a, dstA2)

	assert.Equal(t, dstA[:nA], dstA2[:nA2])
	_ = nB
}

func assertQuickRoundTrip(t *testing.T, values []float32) int {
	t.Helper()
	dst := make([]byte, conservativeBufferSize(len(values)))
	n := EncodeQuick(values, dst)
	require.LessOrEqual(t, n, conservativeBufferSize(len(values)))

	out := make([]float32, len(values))
	DecodeQuick(dst[:n], len(values), out)
	assert.Equal(t, len(values), len(out))
	for i := range values {
		assert.Equal(t, math.Float32bits(values[i]), math.Float32bits(out[i]), "index %d", i)
	}
	return n
}
