package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PolarWolf314/seedxor/internal/audit"
	"github.com/PolarWolf314/seedxor/internal/linestream"
)

// GenOptions configures the gen workflow.
type GenOptions struct {
	Common

	// Dests are the files to create. When empty, Out receives the lines.
	Dests []string

	// Lines is the number of mnemonics per destination.
	Lines int

	// Out is used when Dests is empty.
	Out io.Writer
}

// GenResult contains the outcome of a gen operation.
type GenResult struct {
	// Dests are the files created, empty when writing to Out.
	Dests []string

	// Lines is the number of mnemonics written per destination.
	Lines int

	// AuditErr is set if the audit entry could not be written.
	AuditErr error
}

// Gen writes Lines independent random mnemonics to every destination.
//
// Returns ErrDestinationExists if any destination exists; no files are left
// behind in that case. Returns ErrRandomness if the OS random source fails.
func Gen(ctx context.Context, opts GenOptions) (*GenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Lines < 0 {
		return nil, fmt.Errorf("line count must not be negative, got %d", opts.Lines)
	}
	engine := opts.engine()

	if len(opts.Dests) == 0 {
		w := linestream.NewWriter(opts.Out)
		if err := engine.Generate(w, opts.Lines); err != nil {
			return nil, err
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		return &GenResult{Lines: opts.Lines}, nil
	}

	batch, err := linestream.CreateAll(opts.Dests)
	if err != nil {
		return nil, err
	}
	for i, w := range batch.Writers() {
		if err := engine.Generate(w, opts.Lines); err != nil {
			return nil, errors.Join(fmt.Errorf("generating %s: %w", opts.Dests[i], err), batch.Rollback())
		}
	}
	if err := batch.Close(); err != nil {
		return nil, errors.Join(err, batch.Rollback())
	}

	entry := audit.NewEntry("gen")
	entry.Lines = opts.Lines
	entry.AddOutputs(opts.Dests...)

	return &GenResult{
		Dests:    opts.Dests,
		Lines:    opts.Lines,
		AuditErr: opts.record(entry),
	}, nil
}
