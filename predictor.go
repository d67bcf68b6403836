package vectorcodec

// predictorTableSize is the number of entries in the full scheme's hash
// predictor table (§3).
const predictorTableSize = 256

// predictorTable is the 256-entry hash-indexed residual predictor used by
// the full scheme only. It starts zeroed and is mutated in lockstep by the
// encoder and decoder: disagreement about its contents at the end of any
// block silently corrupts every following block.
type predictorTable struct {
	entries [predictorTableSize]uint32
}

// residualHash computes the 8-bit table index for a residual, resolving
// the codec's documented ambiguity (see DESIGN.md) in favor of
// ((r >> 8) XOR (r >> 24)) AND 0xFF.
func residualHash(r uint32) uint8 {
	return uint8(((r >> 8) ^ (r >> 24)) & 0xFF)
}

// nextIndices computes the scatter/gather indices scheduled for the next
// block from the current block's delta residual, per §4.3 step 4.
func nextIndices(d lanes8) [laneCount]uint8 {
	var idx [laneCount]uint8
	for k := 0; k < laneCount; k++ {
		idx[k] = residualHash(d[k])
	}
	return idx
}

// scatter overwrites table entries at the given indices with d's lanes, in
// lane order. The caller is responsible for using the indices scheduled by
// the previous block, per the ordering subtlety in §4.3.
func (t *predictorTable) scatter(indices [laneCount]uint8, d lanes8) {
	for k := 0; k < laneCount; k++ {
		t.entries[indices[k]] = d[k]
	}
}

// gather reads the table entries at the given indices, in lane order.
func (t *predictorTable) gather(indices [laneCount]uint8) lanes8 {
	var out lanes8
	for k := 0; k < laneCount; k++ {
		out[k] = t.entries[indices[k]]
	}
	return out
}
