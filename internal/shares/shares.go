package shares

import (
	"fmt"

	"github.com/PolarWolf314/seedxor/internal/entropy"
	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/linestream"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
)

// LineError ties a failure to a file and line. File and Line are 1-based.
type LineError struct {
	File int
	Name string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("file %d (%s) line %d: %v", e.File, e.Name, e.Line, e.Err)
	}
	return fmt.Sprintf("file %d line %d: %v", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Engine runs split, combine and generate with a given codec and pad source.
type Engine struct {
	Codec mnemonic.Codec
	Pads  entropy.Source
}

// New returns an engine using BIP39 and the OS random source.
func New() *Engine {
	return &Engine{Codec: mnemonic.Default, Pads: entropy.OS}
}

// Split reads every line of src and writes one share line to each of dests.
// dests[0] receives the residual share; the others receive random pads.
// It returns the number of lines processed.
func (e *Engine) Split(src *linestream.Reader, dests []*linestream.Writer) (int, error) {
	if len(dests) < 2 {
		return 0, kerrors.ErrTooFewDestinations
	}
	first, rest := dests[0], dests[1:]

	var acc, pad mnemonic.Secret
	defer acc.Zero()
	defer pad.Zero()

	for {
		line, ok, err := src.Next()
		if err != nil {
			return src.Line(), err
		}
		if !ok {
			return src.Line(), nil
		}

		acc, err = e.Codec.Decode(line)
		if err != nil {
			return src.Line() - 1, &LineError{File: 1, Name: src.Name(), Line: src.Line(), Err: err}
		}

		for _, w := range rest {
			if err := e.Pads.Fill(&pad); err != nil {
				return src.Line() - 1, err
			}
			acc.XOR(&pad)
			if err := w.WriteLine(e.Codec.Encode(&pad)); err != nil {
				return src.Line() - 1, err
			}
		}
		if err := first.WriteLine(e.Codec.Encode(&acc)); err != nil {
			return src.Line() - 1, err
		}
	}
}

// Combine XORs the lines of every source round by round and writes one line
// per round to dst. The first source sets the expected length: a later
// source ending before it yields ErrFileEndedEarly, and one still going
// after it ends yields ErrFileContinues. It returns the number of rounds
// written.
func (e *Engine) Combine(srcs []*linestream.Reader, dst *linestream.Writer) (int, error) {
	if len(srcs) < 2 {
		return 0, kerrors.ErrTooFewSources
	}

	var acc mnemonic.Secret
	defer acc.Zero()

	for round := 1; ; round++ {
		acc.Zero()
		finishing := false

		for i, r := range srcs {
			line, ok, err := r.Next()
			if err != nil {
				return round - 1, err
			}
			if !ok {
				if i == 0 {
					finishing = true
					continue
				}
				if !finishing {
					return round - 1, &LineError{File: i + 1, Name: r.Name(), Line: round, Err: kerrors.ErrFileEndedEarly}
				}
				continue
			}
			if finishing {
				return round - 1, &LineError{File: i + 1, Name: r.Name(), Line: round, Err: kerrors.ErrFileContinues}
			}

			s, err := e.Codec.Decode(line)
			if err != nil {
				return round - 1, &LineError{File: i + 1, Name: r.Name(), Line: round, Err: err}
			}
			acc.XOR(&s)
			s.Zero()
		}

		if finishing {
			return round - 1, nil
		}
		if err := dst.WriteLine(e.Codec.Encode(&acc)); err != nil {
			return round - 1, err
		}
	}
}

// Generate writes n independent random mnemonics to dst.
func (e *Engine) Generate(dst *linestream.Writer, n int) error {
	var s mnemonic.Secret
	defer s.Zero()

	for i := 0; i < n; i++ {
		if err := e.Pads.Fill(&s); err != nil {
			return err
		}
		if err := dst.WriteLine(e.Codec.Encode(&s)); err != nil {
			return err
		}
	}
	return nil
}
