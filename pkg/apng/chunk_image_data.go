package apng

// ImageData is a IDAT chunk.
type ImageData struct {
	Data []byte
}

// Unmarshal implements Chunk.
func (c *ImageData) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeIDAT)
	if err != nil {
		return err
	}

	c.Data = raw.Data
	return nil
}

// Marshal implements Chunk.
func (c *ImageData) Marshal() (*RawChunk, error) {
	return newRawChunk(ChunkTypeIDAT, c.Data), nil
}
