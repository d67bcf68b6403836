package vectorcodec

import (
	"errors"
	"fmt"
)

// ErrValuesOverflowBuffer is returned when a destination buffer is too small to
// hold the encoded output of the requested input.
var ErrValuesOverflowBuffer = errors.New("vectorcodec: buffer too small")

// ErrLengthMismatch is returned when a decode destination is shorter than
// the requested value count.
var ErrLengthMismatch = errors.New("vectorcodec: length mismatch")

// EncodeFullSafe validates its arguments and calls EncodeFull, returning an
// error instead of corrupting memory when dst is undersized. UpperBound is
// only a tight bound for value counts that are a multiple of laneCount
// (see DESIGN.md), so this wrapper validates against conservativeBufferSize
// instead, which never panics regardless of value count. Callers that have
// already sized dst that way should prefer EncodeFull directly.
func EncodeFullSafe(values []float32, dst []byte) (int, error) {
	if need := conservativeBufferSize(len(values)); len(dst) < need {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrValuesOverflowBuffer, need, len(dst))
	}
	return EncodeFull(values, dst), nil
}

// EncodeQuickSafe is EncodeFullSafe's counterpart for the quick scheme.
func EncodeQuickSafe(values []float32, dst []byte) (int, error) {
	if need := conservativeBufferSize(len(values)); len(dst) < need {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrValuesOverflowBuffer, need, len(dst))
	}
	return EncodeQuick(values, dst), nil
}

// DecodeFullSafe validates that out has room for valueCount values before
// calling DecodeFull. It does not and cannot validate that bytes was
// actually produced by EncodeFull for this valueCount; that contract is the
// caller's responsibility, per §4.5.
func DecodeFullSafe(bytes []byte, valueCount int, out []float32) error {
	if len(out) < valueCount {
		return fmt.Errorf("%w: need %d values, have %d", ErrLengthMismatch, valueCount, len(out))
	}
	DecodeFull(bytes, valueCount, out)
	return nil
}

// DecodeQuickSafe is DecodeFullSafe's counterpart for the quick scheme.
func DecodeQuickSafe(bytes []byte, valueCount int, out []float32) error {
	if len(out) < valueCount {
		return fmt.Errorf("%w: need %d values, have %d", ErrLengthMismatch, valueCount, len(out))
	}
	DecodeQuick(bytes, valueCount, out)
	return nil
}
