package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/seedxor/internal/audit"
	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/linestream"
	"github.com/PolarWolf314/seedxor/internal/utils"
	"github.com/google/uuid"
)

// XorOptions configures the xor workflow.
type XorOptions struct {
	Common

	// Sources are the files to combine. The first sets the expected length.
	Sources []string

	// Dest is the output file. When empty, Out receives the lines.
	Dest string

	// Out is used when Dest is empty.
	Out io.Writer

	// Atomic writes Dest through a temporary file that is only published
	// once every round has succeeded.
	Atomic bool
}

// XorResult contains the outcome of a xor operation.
type XorResult struct {
	Dest     string
	Lines    int
	AuditErr error
}

// Xor combines Sources line by line into Dest or Out.
//
// Returns a shares.LineError wrapping ErrFileEndedEarly or ErrFileContinues
// when the sources differ in length, or a decode error for an invalid line.
// Returns ErrDestinationExists if Dest exists.
func Xor(ctx context.Context, opts XorOptions) (*XorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(opts.Sources) < 2 {
		return nil, kerrors.ErrTooFewSources
	}

	srcs, err := linestream.OpenAll(opts.Sources)
	if err != nil {
		return nil, err
	}
	defer linestream.CloseAll(srcs)

	engine := opts.engine()
	var lines int

	switch {
	case opts.Dest == "":
		w := linestream.NewWriter(opts.Out)
		lines, err = engine.Combine(srcs, w)
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("writing output: %w", ferr)
		}
		if err != nil {
			return nil, err
		}
		return &XorResult{Lines: lines}, nil

	case opts.Atomic:
		lines, err = combineAtomic(srcs, opts)

	default:
		lines, err = combineIncremental(srcs, opts)
	}
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry("xor")
	entry.Sources = opts.Sources
	entry.Lines = lines
	entry.AddOutputs(opts.Dest)

	return &XorResult{
		Dest:     opts.Dest,
		Lines:    lines,
		AuditErr: opts.record(entry),
	}, nil
}

// combineIncremental writes straight into an exclusively created Dest. A
// failing round leaves the rounds before it in place.
func combineIncremental(srcs []*linestream.Reader, opts XorOptions) (int, error) {
	f, err := linestream.CreateExclusive(opts.Dest)
	if err != nil {
		return 0, err
	}
	w := linestream.NewWriter(f)
	lines, err := opts.engine().Combine(srcs, w)
	ferr := w.Flush()
	cerr := f.Close()
	if err != nil {
		return lines, err
	}
	return lines, errors.Join(ferr, cerr)
}

// combineAtomic writes to a temporary file next to Dest and hard-links it
// into place, which fails rather than replacing an existing Dest.
func combineAtomic(srcs []*linestream.Reader, opts XorOptions) (int, error) {
	exists, err := utils.PathExists(opts.Dest)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: %s", kerrors.ErrDestinationExists, opts.Dest)
	}

	tmp := filepath.Join(filepath.Dir(opts.Dest), "."+filepath.Base(opts.Dest)+"."+uuid.NewString()+".tmp")
	f, err := linestream.CreateExclusive(tmp)
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp)

	w := linestream.NewWriter(f)
	lines, err := opts.engine().Combine(srcs, w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return lines, err
	}

	if err := os.Link(tmp, opts.Dest); err != nil {
		if errors.Is(err, os.ErrExist) {
			return lines, fmt.Errorf("%w: %s", kerrors.ErrDestinationExists, opts.Dest)
		}
		return lines, fmt.Errorf("publishing %s: %w", opts.Dest, err)
	}
	return lines, nil
}
