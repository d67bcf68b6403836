package vectorcodec

// EncodeFull compresses values using the full scheme: a delta predictor
// combined with a 256-entry hash predictor table (§4.3). dst must have
// length at least UpperBound(len(values)) when len(values) is a multiple
// of laneCount, or conservativeBufferSize(len(values)) otherwise;
// EncodeFull returns the number of bytes actually written.
func EncodeFull(values []float32, dst []byte) int {
	n := len(values)
	layout := newSequenceLayout(n)
	headerCursor, payloadCursor := layout.headerCursor, layout.payloadCursor

	var table predictorTable
	var prior, xprior lanes8
	var indices [laneCount]uint8

	nBlocks := blockCount(n)
	for b := 0; b < nBlocks; b++ {
		offset := b * laneCount
		v, live := loadBlock(values, offset)

		prior.zeroFrom(live)
		xprior.zeroFrom(live)

		d := v.sub(prior)
		prior = v

		// Scatter uses the indices scheduled by the previous block; gather
		// reads back what scatter just wrote for the indices this block
		// schedules next — see the ordering subtlety in §4.3.
		table.scatter(indices, d)
		indices = nextIndices(d)

		r := d.xor(xprior)
		xprior = table.gather(indices)

		t := trimResiduals(r)
		for k := 0; k < laneCount; k++ {
			width := int(t.bytesEmitted[k])
			payloadCursor = writePayload(dst, payloadCursor, t.shifted[k], width)
		}

		le.PutUint32(dst[headerCursor:], packHeader(t.lz, t.tz))
		headerCursor += headerBytes
	}

	return payloadCursor
}

// DecodeFull reverses EncodeFull, writing exactly valueCount values to out.
// out must have length at least valueCount. bytes must have been produced
// by EncodeFull for the same valueCount; decoding any other input
// (including EncodeQuick's output) is not supported and yields garbage,
// per §4.5.
func DecodeFull(bytes []byte, valueCount int, out []float32) {
	layout := newSequenceLayout(valueCount)
	headerCursor, payloadCursor := layout.headerCursor, layout.payloadCursor

	var table predictorTable
	var prior, xprior lanes8
	var indices [laneCount]uint8

	remaining := valueCount
	nBlocks := blockCount(valueCount)
	for b := 0; b < nBlocks; b++ {
		offset := b * laneCount
		live := laneCount
		if remaining < laneCount {
			live = remaining
		}

		header := le.Uint32(bytes[headerCursor:])
		headerCursor += headerBytes
		lz, tz := unpackHeader(header)

		var r lanes8
		for k := 0; k < laneCount; k++ {
			width := bytesEmittedForCode(lz[k])
			var raw uint32
			raw, payloadCursor = readPayload(bytes, payloadCursor, width)
			r[k] = raw << (8 * uint(tz[k]))
		}

		xprior.zeroFrom(live)
		d := r.xor(xprior)

		table.scatter(indices, d)
		indices = nextIndices(d)
		xprior = table.gather(indices)

		prior.zeroFrom(live)
		v := d.add(prior)
		prior = v

		storeBlock(out, offset, v, live)
		remaining -= live
	}
}
