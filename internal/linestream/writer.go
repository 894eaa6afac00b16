package linestream

import (
	"bufio"
	"io"
)

// Writer appends lines to a sink.
type Writer struct {
	bw    *bufio.Writer
	lines int
}

// NewWriter wraps w in a buffered line writer. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.bw.WriteString(s); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.lines++
	return nil
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lines
}

// Flush writes any buffered data to the sink.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
