package apng

import (
	"fmt"
)

// FormatError is returned when the stream is not a PNG stream or
// when a chunk has a malformed payload.
type FormatError struct {
	Offset int
	Type   ChunkType
	Msg    string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Type == 0 {
		return fmt.Sprintf("apng: invalid format at offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("apng: invalid %v chunk at offset %d: %s", e.Type, e.Offset, e.Msg)
}

// BoundsError is returned when a chunk extends past the end of the buffer
// or when a frame index is out of range.
type BoundsError struct {
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("apng: out of bounds at %d: %s", e.Offset, e.Msg)
}

// OrderingError is returned when chunks appear in an order that is not allowed.
type OrderingError struct {
	Offset int
	Type   ChunkType
	Msg    string
}

// Error implements the error interface.
func (e *OrderingError) Error() string {
	return fmt.Sprintf("apng: %s (%v chunk at offset %d)", e.Msg, e.Type, e.Offset)
}

// MissingHeaderError is returned when the stream ends without a header chunk.
type MissingHeaderError struct{}

// Error implements the error interface.
func (e *MissingHeaderError) Error() string {
	return "apng: missing header chunk"
}
