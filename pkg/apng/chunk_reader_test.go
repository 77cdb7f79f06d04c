package apng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkReader(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x00, 0x03,
		'I', 'D', 'A', 'T',
		0xaa, 0xbb, 0xcc,
		0x01, 0x02, 0x03, 0x04,
		0x00, 0x00, 0x00, 0x00,
		'I', 'E', 'N', 'D',
		0xae, 0x42, 0x60, 0x82,
	}

	r := &chunkReader{buf: buf}

	raw, err := r.next()
	require.NoError(t, err)
	require.Equal(t, &RawChunk{
		Offset: 0,
		Type:   ChunkTypeIDAT,
		Data:   []byte{0xaa, 0xbb, 0xcc},
		CRC:    0x01020304,
	}, raw)
	require.Equal(t, 12, r.remaining())

	raw, err = r.next()
	require.NoError(t, err)
	require.Equal(t, &RawChunk{
		Offset: 15,
		Type:   ChunkTypeIEND,
		Data:   []byte{},
		CRC:    0xae426082,
	}, raw)
	require.Equal(t, 0, r.remaining())
}

func TestChunkReaderSpan(t *testing.T) {
	buf, err := Encode([]Chunk{
		&Header{Width: 10, Height: 20, BitDepth: 8, ColorType: 6},
		&AnimationControl{NumFrames: 1},
		&FrameControl{Width: 10, Height: 20, DelayNum: 1, DelayDen: 10},
		&ImageData{Data: []byte{1, 2, 3, 4, 5}},
		&Opaque{Type: ChunkType(0x74455874), Data: []byte("Comment\x00hi"), CRC: 0xdeadbeef},
		&End{},
	})
	require.NoError(t, err)

	r := &chunkReader{buf: buf, pos: len(Signature)}
	n := 0

	for r.remaining() > 0 {
		raw, err := r.next()
		require.NoError(t, err)

		span := buf[raw.Offset : raw.Offset+len(raw.Data)+chunkOverhead]

		enc, err := raw.Marshal()
		require.NoError(t, err)
		require.Equal(t, span, enc)

		chunk, err := classify(raw)
		require.NoError(t, err)

		raw2, err := chunk.Marshal()
		require.NoError(t, err)
		enc, err = raw2.Marshal()
		require.NoError(t, err)
		require.Equal(t, span, enc)

		n++
	}

	require.Equal(t, 6, n)
}

func TestChunkReaderErrors(t *testing.T) {
	for _, ca := range []struct {
		name string
		buf  []byte
		err  string
	}{
		{
			"truncated header",
			[]byte{0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D', 0xae},
			"apng: out of bounds at 0: truncated chunk: 9 bytes left, at least 12 needed",
		},
		{
			"length past end",
			[]byte{
				0x00, 0x00, 0x00, 0x05,
				'I', 'D', 'A', 'T',
				0x01, 0x02, 0x03, 0x04,
				0x00, 0x00, 0x00, 0x00,
			},
			"apng: out of bounds at 0: IDAT chunk declares 5 bytes of payload, but only 4 are available",
		},
		{
			"max length",
			[]byte{
				0xff, 0xff, 0xff, 0xff,
				'I', 'D', 'A', 'T',
				0x00, 0x00, 0x00, 0x00,
			},
			"apng: out of bounds at 0: IDAT chunk declares 4294967295 bytes of payload, but only 0 are available",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			r := &chunkReader{buf: ca.buf}
			_, err := r.next()
			require.EqualError(t, err, ca.err)

			var berr *BoundsError
			require.True(t, errors.As(err, &berr))
		})
	}
}
