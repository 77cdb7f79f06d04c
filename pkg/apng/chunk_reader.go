package apng

import (
	"encoding/binary"
	"fmt"
)

// chunkReader walks a buffer one chunk at a time.
// Payloads are views into the buffer.
type chunkReader struct {
	buf []byte
	pos int
}

func (r *chunkReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *chunkReader) next() (*RawChunk, error) {
	if r.remaining() < chunkOverhead {
		return nil, &BoundsError{
			Offset: r.pos,
			Msg:    fmt.Sprintf("truncated chunk: %d bytes left, at least %d needed", r.remaining(), chunkOverhead),
		}
	}

	le := binary.BigEndian.Uint32(r.buf[r.pos:])
	typ := ChunkType(binary.BigEndian.Uint32(r.buf[r.pos+4:]))

	if uint64(le)+chunkOverhead > uint64(r.remaining()) {
		return nil, &BoundsError{
			Offset: r.pos,
			Msg: fmt.Sprintf("%v chunk declares %d bytes of payload, but only %d are available",
				typ, le, r.remaining()-chunkOverhead),
		}
	}

	start := r.pos + 8
	end := start + int(le)

	raw := &RawChunk{
		Offset: r.pos,
		Type:   typ,
		Data:   r.buf[start:end:end],
		CRC:    binary.BigEndian.Uint32(r.buf[end:]),
	}

	r.pos = end + 4

	return raw, nil
}
