// Package errors provides typed error values for seedxor.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Decode errors: a line is not a valid 24-word mnemonic (ErrUnknownWord,
//     ErrBadLength, ErrChecksumMismatch)
//   - I/O errors: a source can't be read or a destination already exists
//     (ErrSourceUnreadable, ErrDestinationExists)
//   - Structural errors: share files of different lengths (ErrFileEndedEarly,
//     ErrFileContinues)
//   - Randomness errors: the OS random source failed (ErrRandomness)
//   - Config errors: malformed or existing config file (ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("creating %s: %w", path, errors.ErrDestinationExists)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrChecksumMismatch) {
//	    // Show user-friendly message
//	}
package errors
