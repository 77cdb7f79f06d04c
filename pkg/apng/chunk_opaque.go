package apng

// Opaque is a chunk with an unrecognized tag.
// Its payload and trailer are kept as they are.
type Opaque struct {
	Type ChunkType
	Data []byte
	CRC  uint32
}

// Unmarshal implements Chunk.
func (c *Opaque) Unmarshal(raw *RawChunk) error {
	c.Type = raw.Type
	c.Data = raw.Data
	c.CRC = raw.CRC
	return nil
}

// Marshal implements Chunk.
func (c *Opaque) Marshal() (*RawChunk, error) {
	return &RawChunk{
		Type: c.Type,
		Data: c.Data,
		CRC:  c.CRC,
	}, nil
}
