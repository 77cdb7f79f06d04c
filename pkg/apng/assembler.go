package apng

// assembler groups classified chunks into a Document.
type assembler struct {
	header           *Header
	animationControl *AnimationControl
	frames           []*Frame
	others           []Chunk
	defaultImage     []*ImageData
	curFrame         *Frame
}

func (a *assembler) process(raw *RawChunk, chunk Chunk) error {
	switch tchunk := chunk.(type) {
	case *Header:
		if a.header != nil {
			return &OrderingError{Offset: raw.Offset, Type: raw.Type, Msg: "duplicate header chunk"}
		}
		a.header = tchunk

	case *AnimationControl:
		if a.animationControl != nil {
			return &OrderingError{Offset: raw.Offset, Type: raw.Type, Msg: "duplicate animation-control chunk"}
		}
		a.animationControl = tchunk

	case *FrameControl:
		if a.header == nil {
			return &OrderingError{Offset: raw.Offset, Type: raw.Type, Msg: "frame-control before header"}
		}
		a.flushFrame()
		a.curFrame = &Frame{Control: tchunk}

	case *FrameData:
		if a.curFrame == nil {
			return &OrderingError{Offset: raw.Offset, Type: raw.Type, Msg: "frame data before frame-control"}
		}
		a.curFrame.Data = append(a.curFrame.Data, tchunk)

	case *ImageData:
		a.defaultImage = append(a.defaultImage, tchunk)

		// without an open frame, image data belongs to the default image only.
		if a.curFrame != nil {
			a.curFrame.Data = append(a.curFrame.Data, tchunk)
		} else {
			a.others = append(a.others, tchunk)
		}

	default:
		a.others = append(a.others, chunk)
	}

	return nil
}

func (a *assembler) flushFrame() {
	if a.curFrame != nil {
		a.frames = append(a.frames, a.curFrame)
		a.curFrame = nil
	}
}

func (a *assembler) finalize() (*Document, error) {
	a.flushFrame()

	if a.header == nil {
		return nil, &MissingHeaderError{}
	}

	return &Document{
		header:           a.header,
		animationControl: a.animationControl,
		frames:           a.frames,
		others:           a.others,
		defaultImage:     a.defaultImage,
	}, nil
}
