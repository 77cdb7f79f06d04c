package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Destination is a log destination.
type Destination int

const (
	// DestinationStdout writes logs to the standard output.
	DestinationStdout Destination = iota

	// DestinationFile writes logs to a file.
	DestinationFile
)

type destination interface {
	log(time.Time, Level, string, ...any)
	close()
}

// destinationWriter writes one line per entry into an io.Writer.
type destinationWriter struct {
	w        io.Writer
	closer   io.Closer
	useColor bool
	buf      bytes.Buffer
}

func newDestinationStdout(w io.Writer) destination {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}

	return &destinationWriter{
		w:        w,
		useColor: useColor,
	}
}

func newDestinationFile(filePath string) (destination, error) {
	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &destinationWriter{
		w:      f,
		closer: f,
	}, nil
}

func (d *destinationWriter) log(t time.Time, level Level, format string, args ...any) {
	d.buf.Reset()

	ts := string(t.AppendFormat(nil, "2006/01/02 15:04:05"))
	lv := levelLabels[level]
	label := lv.label

	if d.useColor {
		ts = color.RenderString(color.Gray.Code(), ts)
		label = color.RenderString(lv.color, label)
	}

	d.buf.WriteString(ts)
	d.buf.WriteByte(' ')
	d.buf.WriteString(label)
	d.buf.WriteByte(' ')
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')

	d.w.Write(d.buf.Bytes()) //nolint:errcheck
}

func (d *destinationWriter) close() {
	if d.closer != nil {
		d.closer.Close()
	}
}
