package apng

import (
	"encoding/binary"
	"fmt"
)

// FrameData is a fdAT chunk.
type FrameData struct {
	SequenceNumber uint32
	Data           []byte
}

// Unmarshal implements Chunk.
func (c *FrameData) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeFDAT)
	if err != nil {
		return err
	}

	if len(raw.Data) < 4 {
		return fmt.Errorf("payload too short: %d bytes, sequence number needs 4", len(raw.Data))
	}

	c.SequenceNumber = binary.BigEndian.Uint32(raw.Data)
	c.Data = raw.Data[4:]

	return nil
}

// Marshal implements Chunk.
func (c *FrameData) Marshal() (*RawChunk, error) {
	buf := make([]byte, 4+len(c.Data))
	binary.BigEndian.PutUint32(buf, c.SequenceNumber)
	copy(buf[4:], c.Data)

	return newRawChunk(ChunkTypeFDAT, buf), nil
}
