package apng

import (
	"bytes"
	"fmt"

	"code.cloudfoundry.org/bytefmt"

	"github.com/bluenviron/apngdemux/pkg/logger"
)

// Decoder is an APNG decoder.
// The zero value is ready to use.
type Decoder struct {
	// copy chunk payloads instead of referencing the source buffer.
	// When false, the buffer must not be modified while the Document is in use.
	CopyPayloads bool

	// maximum payload size of a single chunk. Zero means no limit.
	MaxChunkSize uint32

	Parent logger.Writer
}

// Log implements logger.Writer.
func (d *Decoder) Log(level logger.Level, format string, args ...any) {
	if d.Parent != nil {
		d.Parent.Log(level, "[apng] "+format, args...)
	}
}

// Decode decodes an APNG stream.
func (d *Decoder) Decode(buf []byte) (*Document, error) {
	err := checkSignature(buf)
	if err != nil {
		return nil, err
	}

	r := &chunkReader{
		buf: buf,
		pos: len(Signature),
	}
	a := &assembler{}

	for r.remaining() > 0 {
		var raw *RawChunk
		raw, err = r.next()
		if err != nil {
			return nil, err
		}

		d.Log(logger.Debug, "chunk %v at offset %d, %s", raw.Type, raw.Offset,
			bytefmt.ByteSize(uint64(len(raw.Data))))

		if d.MaxChunkSize != 0 && uint32(len(raw.Data)) > d.MaxChunkSize {
			return nil, &FormatError{
				Offset: raw.Offset,
				Type:   raw.Type,
				Msg: fmt.Sprintf("payload size %s exceeds maximum %s",
					bytefmt.ByteSize(uint64(len(raw.Data))), bytefmt.ByteSize(uint64(d.MaxChunkSize))),
			}
		}

		if d.CopyPayloads {
			raw.Data = bytes.Clone(raw.Data)
		}

		var chunk Chunk
		chunk, err = classify(raw)
		if err != nil {
			return nil, err
		}

		err = a.process(raw, chunk)
		if err != nil {
			return nil, err
		}
	}

	doc, err := a.finalize()
	if err != nil {
		return nil, err
	}

	d.Log(logger.Debug, "decoded %dx%d image, %d frames, %d other chunks",
		doc.header.Width, doc.header.Height, len(doc.frames), len(doc.others))

	return doc, nil
}

// Decode decodes an APNG stream with default settings.
// Payloads reference buf.
func Decode(buf []byte) (*Document, error) {
	return (&Decoder{}).Decode(buf)
}
