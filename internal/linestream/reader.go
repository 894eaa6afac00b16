package linestream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
)

// Reader produces the lines of a single stream in order.
type Reader struct {
	name string
	br   *bufio.Reader
	c    io.Closer
	line int
	done bool
}

// NewReader wraps r. name is used in error messages.
func NewReader(name string, r io.Reader) *Reader {
	lr := &Reader{name: name, br: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		lr.c = c
	}
	return lr
}

// Open opens path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", kerrors.ErrSourceUnreadable, path, err)
	}
	return NewReader(path, f), nil
}

// OpenAll opens every path for reading. On failure the readers opened so far
// are closed.
func OpenAll(paths []string) ([]*Reader, error) {
	readers := make([]*Reader, 0, len(paths))
	for _, p := range paths {
		r, err := Open(p)
		if err != nil {
			CloseAll(readers)
			return nil, err
		}
		readers = append(readers, r)
	}
	return readers, nil
}

// CloseAll closes every reader, ignoring errors.
func CloseAll(readers []*Reader) {
	for _, r := range readers {
		_ = r.Close()
	}
}

// Name returns the name the reader was created with.
func (r *Reader) Name() string {
	return r.name
}

// Line returns the number of lines returned so far.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next line without its terminator. ok is false once the
// stream is exhausted; after that Next keeps returning false.
func (r *Reader) Next() (line string, ok bool, err error) {
	if r.done {
		return "", false, nil
	}
	s, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading %s: %w", r.name, err)
	}
	if len(s) == 0 {
		r.done = true
		return "", false, nil
	}
	if err != nil {
		// Unterminated final line; the next call reports end of stream.
		r.done = true
	}
	r.line++
	return trimNewline(s), true, nil
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}
