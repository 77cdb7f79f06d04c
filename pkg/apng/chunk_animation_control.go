package apng

import (
	"encoding/binary"
)

const animationControlSize = 8

// AnimationControl is a acTL chunk.
type AnimationControl struct {
	NumFrames uint32
	// 0 means infinite looping.
	NumPlays uint32
}

// Unmarshal implements Chunk.
func (c *AnimationControl) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeACTL)
	if err != nil {
		return err
	}

	err = checkSize(raw, animationControlSize)
	if err != nil {
		return err
	}

	c.NumFrames = binary.BigEndian.Uint32(raw.Data[0:])
	c.NumPlays = binary.BigEndian.Uint32(raw.Data[4:])

	return nil
}

// Marshal implements Chunk.
func (c *AnimationControl) Marshal() (*RawChunk, error) {
	buf := make([]byte, animationControlSize)
	binary.BigEndian.PutUint32(buf[0:], c.NumFrames)
	binary.BigEndian.PutUint32(buf[4:], c.NumPlays)

	return newRawChunk(ChunkTypeACTL, buf), nil
}
