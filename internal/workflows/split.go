package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/seedxor/internal/audit"
	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/linestream"
)

// SplitOptions configures the split workflow.
type SplitOptions struct {
	Common

	// Source is the mnemonic file to split.
	Source string

	// Dests are the share files to create. The first receives the residual
	// share, the rest receive random pads.
	Dests []string
}

// SplitResult contains the outcome of a split operation.
type SplitResult struct {
	Dests    []string
	Lines    int
	AuditErr error
}

// Split splits every line of Source into len(Dests) XOR shares.
//
// The source is opened before any destination is created. Returns
// ErrDestinationExists if any destination exists, a shares.LineError for an
// invalid source line and ErrRandomness if the random source fails. On any
// error, every destination created by this call is removed.
func Split(ctx context.Context, opts SplitOptions) (*SplitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(opts.Dests) < 2 {
		return nil, kerrors.ErrTooFewDestinations
	}

	src, err := linestream.Open(opts.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	batch, err := linestream.CreateAll(opts.Dests)
	if err != nil {
		return nil, err
	}

	lines, err := opts.engine().Split(src, batch.Writers())
	if err != nil {
		return nil, errors.Join(err, batch.Rollback())
	}
	if err := batch.Close(); err != nil {
		return nil, errors.Join(err, batch.Rollback())
	}

	entry := audit.NewEntry("split")
	entry.Sources = []string{opts.Source}
	entry.Lines = lines
	entry.AddOutputs(opts.Dests...)

	return &SplitResult{
		Dests:    opts.Dests,
		Lines:    lines,
		AuditErr: opts.record(entry),
	}, nil
}
