package apng

import (
	"fmt"
)

// ChunkType is a chunk type tag, stored as the big-endian encoding of its four characters.
type ChunkType uint32

// chunk types.
const (
	ChunkTypeIHDR ChunkType = 0x49484452
	ChunkTypeACTL ChunkType = 0x6163544C
	ChunkTypeFCTL ChunkType = 0x6663544C
	ChunkTypeFDAT ChunkType = 0x66644154
	ChunkTypeIDAT ChunkType = 0x49444154
	ChunkTypeIEND ChunkType = 0x49454E44
)

func (t ChunkType) bytes() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

// String implements fmt.Stringer.
func (t ChunkType) String() string {
	b := t.bytes()
	for _, c := range b {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return fmt.Sprintf("0x%08x", uint32(t))
		}
	}
	return string(b[:])
}

// IsCritical returns whether the chunk is critical, that is, whether
// the first letter of the tag is uppercase.
func (t ChunkType) IsCritical() bool {
	return (t>>24)&0x20 == 0
}
