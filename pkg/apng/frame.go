package apng

// Frame is an animation frame: a frame-control chunk and the
// data chunks that follow it, either *FrameData or *ImageData.
type Frame struct {
	Control *FrameControl
	Data    []Chunk
}

func (f *Frame) clone() Frame {
	ctl := *f.Control
	return Frame{
		Control: &ctl,
		Data:    append([]Chunk(nil), f.Data...),
	}
}

// Payload returns the compressed pixel data of the frame,
// that is the concatenation of the payloads of its data chunks,
// without sequence numbers.
func (f *Frame) Payload() []byte {
	n := 0
	for _, chunk := range f.Data {
		switch tchunk := chunk.(type) {
		case *FrameData:
			n += len(tchunk.Data)
		case *ImageData:
			n += len(tchunk.Data)
		}
	}

	ret := make([]byte, 0, n)

	for _, chunk := range f.Data {
		switch tchunk := chunk.(type) {
		case *FrameData:
			ret = append(ret, tchunk.Data...)
		case *ImageData:
			ret = append(ret, tchunk.Data...)
		}
	}

	return ret
}
