// Package entropy supplies random 256-bit pads from the operating system's
// secure random number generator.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
)

// Source fills secrets with random bytes.
type Source interface {
	Fill(s *mnemonic.Secret) error
}

// Reader adapts an io.Reader into a Source. A short or failed read is
// reported as ErrRandomness and never retried.
type Reader struct {
	R io.Reader
}

// Fill overwrites s with len(s) bytes from the underlying reader.
func (r Reader) Fill(s *mnemonic.Secret) error {
	if _, err := io.ReadFull(r.R, s[:]); err != nil {
		s.Zero()
		return fmt.Errorf("%w: %v", kerrors.ErrRandomness, err)
	}
	return nil
}

// OS is the operating system's cryptographically secure source.
var OS Source = Reader{R: rand.Reader}
