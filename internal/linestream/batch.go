package linestream

import (
	"errors"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
)

// FileMode is the permission used for every file seedxor creates.
const FileMode = 0o600

// Batch is a set of newly created destination files that are kept or
// removed together.
type Batch struct {
	paths   []string
	files   []*os.File
	writers []*Writer
	closed  bool
}

// CreateExclusive creates path, failing if it already exists.
func CreateExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrDestinationExists, path)
		}
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

// CreateAll exclusively creates every path. If any path cannot be created,
// the files created before it are closed and removed and the error is
// returned.
func CreateAll(paths []string) (*Batch, error) {
	b := &Batch{}
	for _, p := range paths {
		f, err := CreateExclusive(p)
		if err != nil {
			if rerr := b.Rollback(); rerr != nil {
				return nil, errors.Join(err, rerr)
			}
			return nil, err
		}
		b.paths = append(b.paths, p)
		b.files = append(b.files, f)
		b.writers = append(b.writers, NewWriter(f))
	}
	return b, nil
}

// Paths returns the created paths in order.
func (b *Batch) Paths() []string {
	return b.paths
}

// Writers returns one writer per created path, in order.
func (b *Batch) Writers() []*Writer {
	return b.writers
}

// Close flushes and closes every file. The files are kept.
func (b *Batch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	var errs []error
	for i, f := range b.files {
		if err := b.writers[i].Flush(); err != nil {
			errs = append(errs, fmt.Errorf("writing %s: %w", b.paths[i], err))
		}
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", b.paths[i], err))
		}
	}
	return errors.Join(errs...)
}

// Rollback closes and removes every file in the batch.
func (b *Batch) Rollback() error {
	var errs []error
	if !b.closed {
		for _, f := range b.files {
			_ = f.Close()
		}
		b.closed = true
	}
	for _, p := range b.paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("removing %s: %w", p, err))
		}
	}
	b.paths = nil
	b.files = nil
	b.writers = nil
	return errors.Join(errs...)
}
