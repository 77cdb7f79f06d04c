package apng

import (
	"fmt"
)

// Chunk is a classified chunk.
type Chunk interface {
	Unmarshal(*RawChunk) error
	Marshal() (*RawChunk, error)
}

func allocateChunk(typ ChunkType) Chunk {
	switch typ {
	case ChunkTypeIHDR:
		return &Header{}

	case ChunkTypeACTL:
		return &AnimationControl{}

	case ChunkTypeFCTL:
		return &FrameControl{}

	case ChunkTypeFDAT:
		return &FrameData{}

	case ChunkTypeIDAT:
		return &ImageData{}

	case ChunkTypeIEND:
		return &End{}

	default:
		return &Opaque{}
	}
}

// classify turns a raw chunk into a typed one.
// Unknown tags never fail and produce an Opaque chunk.
func classify(raw *RawChunk) (Chunk, error) {
	chunk := allocateChunk(raw.Type)

	err := chunk.Unmarshal(raw)
	if err != nil {
		return nil, &FormatError{
			Offset: raw.Offset,
			Type:   raw.Type,
			Msg:    err.Error(),
		}
	}

	return chunk, nil
}

func checkType(raw *RawChunk, expected ChunkType) error {
	if raw.Type != expected {
		return fmt.Errorf("unexpected chunk type %v, expected %v", raw.Type, expected)
	}
	return nil
}

func checkSize(raw *RawChunk, expected int) error {
	if len(raw.Data) != expected {
		return fmt.Errorf("unexpected payload size %d, expected %d", len(raw.Data), expected)
	}
	return nil
}
