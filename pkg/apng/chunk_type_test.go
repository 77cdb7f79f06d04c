package apng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkTypeString(t *testing.T) {
	for _, ca := range []struct {
		typ ChunkType
		str string
	}{
		{ChunkTypeIHDR, "IHDR"},
		{ChunkTypeACTL, "acTL"},
		{ChunkTypeFCTL, "fcTL"},
		{ChunkTypeFDAT, "fdAT"},
		{ChunkTypeIDAT, "IDAT"},
		{ChunkTypeIEND, "IEND"},
		{ChunkType(0x74455874), "tEXt"},
		{ChunkType(0x00010203), "0x00010203"},
	} {
		t.Run(ca.str, func(t *testing.T) {
			require.Equal(t, ca.str, ca.typ.String())
		})
	}
}

func TestChunkTypeIsCritical(t *testing.T) {
	require.True(t, ChunkTypeIHDR.IsCritical())
	require.True(t, ChunkTypeIEND.IsCritical())
	require.False(t, ChunkTypeACTL.IsCritical())
	require.False(t, ChunkType(0x74455874).IsCritical())
}
