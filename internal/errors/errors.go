package errors

import "errors"

// Decode errors indicate a line could not be turned back into a secret.
var (
	// ErrUnknownWord indicates a word is not in the mnemonic wordlist.
	ErrUnknownWord = errors.New("unknown mnemonic word")

	// ErrBadLength indicates the word count does not encode 256 bits.
	ErrBadLength = errors.New("mnemonic must have exactly 24 words")

	// ErrChecksumMismatch indicates the embedded checksum does not match.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
)

// I/O errors indicate problems opening or creating files.
var (
	// ErrDestinationExists indicates a destination path already exists.
	// Destinations are never overwritten.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSourceUnreadable indicates a source file could not be opened for reading.
	ErrSourceUnreadable = errors.New("couldn't open for reading")

	// ErrNoFilesFound indicates a glob pattern matched nothing.
	ErrNoFilesFound = errors.New("no matching files found")
)

// Structural errors indicate share files that disagree on their length.
var (
	// ErrFileEndedEarly indicates a file ended while an earlier file in the
	// same round still had a line.
	ErrFileEndedEarly = errors.New("file suddenly ended")

	// ErrFileContinues indicates a file still has lines after the first
	// file has ended.
	ErrFileContinues = errors.New("file continues longer than previous file")
)

// Argument errors indicate the core was invoked with an invalid file set.
var (
	// ErrTooFewDestinations indicates split was given fewer than two destinations.
	ErrTooFewDestinations = errors.New("at least two destinations are required")

	// ErrTooFewSources indicates xor was given fewer than two sources.
	ErrTooFewSources = errors.New("at least two sources are required")
)

// ErrRandomness indicates the operating system could not supply random bytes.
// It is never retried.
var ErrRandomness = errors.New("secure random source failed")

// Config errors indicate issues with the configuration file.
var (
	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("configuration file already exists")
)
