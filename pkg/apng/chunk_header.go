package apng

import (
	"encoding/binary"
)

const headerSize = 13

// Header is a IHDR chunk.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Unmarshal implements Chunk.
func (c *Header) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeIHDR)
	if err != nil {
		return err
	}

	err = checkSize(raw, headerSize)
	if err != nil {
		return err
	}

	c.Width = binary.BigEndian.Uint32(raw.Data[0:])
	c.Height = binary.BigEndian.Uint32(raw.Data[4:])
	c.BitDepth = raw.Data[8]
	c.ColorType = raw.Data[9]
	c.CompressionMethod = raw.Data[10]
	c.FilterMethod = raw.Data[11]
	c.InterlaceMethod = raw.Data[12]

	return nil
}

// Marshal implements Chunk.
func (c *Header) Marshal() (*RawChunk, error) {
	buf := make([]byte, headerSize)
	binary.BigEndian.PutUint32(buf[0:], c.Width)
	binary.BigEndian.PutUint32(buf[4:], c.Height)
	buf[8] = c.BitDepth
	buf[9] = c.ColorType
	buf[10] = c.CompressionMethod
	buf[11] = c.FilterMethod
	buf[12] = c.InterlaceMethod

	return newRawChunk(ChunkTypeIHDR, buf), nil
}
