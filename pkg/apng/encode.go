package apng

// Encode encodes chunks into a stream, prefixed by the PNG signature.
// Chunks are written in the given order.
func Encode(chunks []Chunk) ([]byte, error) {
	raws := make([]*RawChunk, len(chunks))
	n := len(Signature)

	for i, chunk := range chunks {
		raw, err := chunk.Marshal()
		if err != nil {
			return nil, err
		}
		raws[i] = raw
		n += raw.MarshalSize()
	}

	buf := make([]byte, n)
	pos := copy(buf, Signature)

	for _, raw := range raws {
		m, err := raw.MarshalTo(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += m
	}

	return buf, nil
}
