package vectorcodec

// EncodeQuick compresses values using the quick scheme: a delta predictor
// alone, with no hash predictor table (§4.5). dst must have length at least
// UpperBound(len(values)) when len(values) is a multiple of laneCount, or
// conservativeBufferSize(len(values)) otherwise; EncodeQuick returns the
// number of bytes actually written. Output from EncodeQuick only decodes
// correctly with DecodeQuick.
func EncodeQuick(values []float32, dst []byte) int {
	n := len(values)
	layout := newSequenceLayout(n)
	headerCursor, payloadCursor := layout.headerCursor, layout.payloadCursor

	var prior lanes8

	nBlocks := blockCount(n)
	for b := 0; b < nBlocks; b++ {
		offset := b * laneCount
		v, live := loadBlock(values, offset)

		prior.zeroFrom(live)

		d := v.sub(prior)
		prior = v

		t := trimResiduals(d)
		for k := 0; k < laneCount; k++ {
			width := int(t.bytesEmitted[k])
			payloadCursor = writePayload(dst, payloadCursor, t.shifted[k], width)
		}

		le.PutUint32(dst[headerCursor:], packHeader(t.lz, t.tz))
		headerCursor += headerBytes
	}

	return payloadCursor
}

// DecodeQuick reverses EncodeQuick, writing exactly valueCount values to out.
// out must have length at least valueCount. bytes must have been produced by
// EncodeQuick for the same valueCount; decoding DecodeFull's output with this
// function (or vice versa) is not supported and yields garbage, per §4.5.
func DecodeQuick(bytes []byte, valueCount int, out []float32) {
	layout := newSequenceLayout(valueCount)
	headerCursor, payloadCursor := layout.headerCursor, layout.payloadCursor

	var prior lanes8

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

		var d lanes8
		for k := 0; k < laneCount; k++ {
			width := bytesEmittedForCode(lz[k])
			var raw uint32
			raw, payloadCursor = readPayload(bytes, payloadCursor, width)
			d[k] = raw << (8 * uint(tz[k]))
		}

		prior.zeroFrom(live)
		v := d.add(prior)
		prior = v

		storeBlock(out, offset, v, live)
		remaining -= live
	}
}
