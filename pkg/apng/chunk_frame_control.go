package apng

import (
	"encoding/binary"
	"fmt"
	"time"
)

const frameControlSize = 26

// DisposeOp is the operation applied to the frame area after the frame is rendered.
type DisposeOp uint8

// dispose operations.
const (
	DisposeOpNone       DisposeOp = 0
	DisposeOpBackground DisposeOp = 1
	DisposeOpPrevious   DisposeOp = 2
)

// BlendOp is the operation used to render the frame onto the output buffer.
type BlendOp uint8

// blend operations.
const (
	BlendOpSource BlendOp = 0
	BlendOpOver   BlendOp = 1
)

// FrameControl is a fcTL chunk.
type FrameControl struct {
	SequenceNumber uint32
	Width          uint32
	Height         uint32
	XOffset        uint32
	YOffset        uint32
	DelayNum       uint16
	DelayDen       uint16
	DisposeOp      DisposeOp
	BlendOp        BlendOp
}

// Unmarshal implements Chunk.
func (c *FrameControl) Unmarshal(raw *RawChunk) error {
	err := checkType(raw, ChunkTypeFCTL)
	if err != nil {
		return err
	}

	err = checkSize(raw, frameControlSize)
	if err != nil {
		return err
	}

	c.SequenceNumber = binary.BigEndian.Uint32(raw.Data[0:])
	c.Width = binary.BigEndian.Uint32(raw.Data[4:])
	c.Height = binary.BigEndian.Uint32(raw.Data[8:])
	c.XOffset = binary.BigEndian.Uint32(raw.Data[12:])
	c.YOffset = binary.BigEndian.Uint32(raw.Data[16:])
	c.DelayNum = binary.BigEndian.Uint16(raw.Data[20:])
	c.DelayDen = binary.BigEndian.Uint16(raw.Data[22:])

	c.DisposeOp = DisposeOp(raw.Data[24])
	if c.DisposeOp > DisposeOpPrevious {
		return fmt.Errorf("invalid dispose_op: %d", c.DisposeOp)
	}

	c.BlendOp = BlendOp(raw.Data[25])
	if c.BlendOp > BlendOpOver {
		return fmt.Errorf("invalid blend_op: %d", c.BlendOp)
	}

	return nil
}

// Marshal implements Chunk.
func (c *FrameControl) Marshal() (*RawChunk, error) {
	buf := make([]byte, frameControlSize)
	binary.BigEndian.PutUint32(buf[0:], c.SequenceNumber)
	binary.BigEndian.PutUint32(buf[4:], c.Width)
	binary.BigEndian.PutUint32(buf[8:], c.Height)
	binary.BigEndian.PutUint32(buf[12:], c.XOffset)
	binary.BigEndian.PutUint32(buf[16:], c.YOffset)
	binary.BigEndian.PutUint16(buf[20:], c.DelayNum)
	binary.BigEndian.PutUint16(buf[22:], c.DelayDen)
	buf[24] = byte(c.DisposeOp)
	buf[25] = byte(c.BlendOp)

	return newRawChunk(ChunkTypeFCTL, buf), nil
}

// Delay returns the time the frame is displayed.
// A zero denominator is treated as 100.
func (c *FrameControl) Delay() time.Duration {
	den := c.DelayDen
	if den == 0 {
		den = 100
	}
	return time.Duration(c.DelayNum) * time.Second / time.Duration(den)
}
