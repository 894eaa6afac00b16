// Package workflows provides high-level orchestration for seedxor commands.
//
// Workflows turn file paths into open readers and newly created writers, run
// the matching internal/shares operation, and record the result in the
// audit log. They are independent of CLI concerns like flag parsing,
// spinners and output formatting.
//
// # Available Workflows
//
//   - Gen: writes random mnemonics to new files or a writer
//   - Split: splits one mnemonic file into N share files
//   - Xor: XORs N mnemonic files into one file or a writer
//   - Check: validates every line of mnemonic files
//
// # File Creation
//
// Gen and Split create all destinations exclusively and as a unit: if any
// destination exists or any line fails, every file created by the run is
// removed again. Xor publishes its output only after the last round when
// Atomic is set; otherwise it writes incrementally and a failure leaves a
// truncated output behind.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, wrapped in
// shares.LineError where a file and line can be named:
//
//	_, err := workflows.Xor(ctx, opts)
//	if errors.Is(err, kerrors.ErrFileEndedEarly) {
//	    // share files have different lengths
//	}
package workflows
