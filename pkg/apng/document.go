package apng

import (
	"fmt"
)

// Document is a decoded APNG stream.
// It must not be modified after being returned by Decode.
type Document struct {
	header           *Header
	animationControl *AnimationControl
	frames           []*Frame
	others           []Chunk
	defaultImage     []*ImageData
}

// Header returns the image header.
func (d *Document) Header() Header {
	return *d.header
}

// AnimationControl returns the animation control chunk, if present.
func (d *Document) AnimationControl() (AnimationControl, bool) {
	if d.animationControl == nil {
		return AnimationControl{}, false
	}
	return *d.animationControl, true
}

// NumFrames returns the number of frames.
func (d *Document) NumFrames() int {
	return len(d.frames)
}

// Frame returns a copy of the frame with given index.
func (d *Document) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(d.frames) {
		return Frame{}, &BoundsError{
			Offset: i,
			Msg:    fmt.Sprintf("frame index %d, document has %d frames", i, len(d.frames)),
		}
	}
	return d.frames[i].clone(), nil
}

// Frames returns a copy of all frames, in file order.
func (d *Document) Frames() []Frame {
	if len(d.frames) == 0 {
		return nil
	}

	ret := make([]Frame, len(d.frames))
	for i, f := range d.frames {
		ret[i] = f.clone()
	}
	return ret
}

// Others returns chunks that are not part of the header, of the animation
// control or of a frame, in file order.
func (d *Document) Others() []Chunk {
	return append([]Chunk(nil), d.others...)
}

// DefaultImage returns all image data chunks, which form the static image
// displayed by decoders that do not support animations.
func (d *Document) DefaultImage() []*ImageData {
	return append([]*ImageData(nil), d.defaultImage...)
}
