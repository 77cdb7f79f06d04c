package apng

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// length, type and trailer.
const chunkOverhead = 12

// RawChunk is a chunk that has not been classified yet.
type RawChunk struct {
	// position of the length field in the source buffer.
	Offset int
	Type   ChunkType
	Data   []byte
	// trailer, conventionally a CRC. It is not validated.
	CRC uint32
}

func newRawChunk(typ ChunkType, data []byte) *RawChunk {
	t := typ.bytes()
	h := crc32.NewIEEE()
	h.Write(t[:])
	h.Write(data)

	return &RawChunk{
		Type: typ,
		Data: data,
		CRC:  h.Sum32(),
	}
}

// MarshalSize returns the size of the chunk on the wire.
func (c *RawChunk) MarshalSize() int {
	return chunkOverhead + len(c.Data)
}

// MarshalTo writes the chunk into buf, which must be at least MarshalSize() bytes long.
func (c *RawChunk) MarshalTo(buf []byte) (int, error) {
	if uint64(len(c.Data)) > 0xFFFFFFFF {
		return 0, fmt.Errorf("payload too big")
	}

	n := c.MarshalSize()
	if len(buf) < n {
		return 0, fmt.Errorf("buffer too small")
	}

	binary.BigEndian.PutUint32(buf, uint32(len(c.Data)))
	binary.BigEndian.PutUint32(buf[4:], uint32(c.Type))
	copy(buf[8:], c.Data)
	binary.BigEndian.PutUint32(buf[8+len(c.Data):], c.CRC)

	return n, nil
}

// Marshal encodes the chunk.
func (c *RawChunk) Marshal() ([]byte, error) {
	buf := make([]byte, c.MarshalSize())
	_, err := c.MarshalTo(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
