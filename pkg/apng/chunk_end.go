package apng

// End is a IEND chunk.
type End struct{}

// Unmarshal implements Chunk.
func (c *End) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeIEND)
	if err != nil {
		return err
	}

	return checkSize(raw, 0)
}

// Marshal implements Chunk.
func (c *End) Marshal() (*RawChunk, error) {
	return newRawChunk(ChunkTypeIEND, nil), nil
}
