package workflows

import (
	"context"

	"github.com/PolarWolf314/seedxor/internal/linestream"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
	"github.com/PolarWolf314/seedxor/internal/shares"
)

// CheckOptions configures the check workflow.
type CheckOptions struct {
	Paths []string

	// Codec defaults to mnemonic.Default.
	Codec mnemonic.Codec
}

// FileCheck is the result for one checked file.
type FileCheck struct {
	Path  string
	Lines int
}

// CheckResult contains the outcome of a check operation.
type CheckResult struct {
	Files []FileCheck

	// SameLength reports whether every file has the same number of lines,
	// which xor requires.
	SameLength bool
}

// Check decodes every line of every file. It stops at the first invalid
// line and returns it as a shares.LineError.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	codec := opts.Codec
	if codec == nil {
		codec = mnemonic.Default
	}

	result := &CheckResult{SameLength: true}
	for i, p := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := checkFile(codec, i+1, p)
		if err != nil {
			return nil, err
		}
		if i > 0 && n != result.Files[0].Lines {
			result.SameLength = false
		}
		result.Files = append(result.Files, FileCheck{Path: p, Lines: n})
	}
	return result, nil
}

func checkFile(codec mnemonic.Codec, index int, path string) (int, error) {
	r, err := linestream.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	for {
		line, ok, err := r.Next()
		if err != nil {
			return r.Line(), err
		}
		if !ok {
			return r.Line(), nil
		}
		s, err := codec.Decode(line)
		s.Zero()
		if err != nil {
			return r.Line(), &shares.LineError{File: index, Name: path, Line: r.Line(), Err: err}
		}
	}
}
