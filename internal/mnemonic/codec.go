package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/tyler-smith/go-bip39"
)

// WordCount is the number of words in a mnemonic encoding one Secret.
const WordCount = 24

// Codec converts between secrets and their mnemonic text form.
type Codec interface {
	Encode(s *Secret) string
	Decode(text string) (Secret, error)
}

// Kind classifies a decode failure.
type Kind int

const (
	UnknownWord Kind = iota
	BadLength
	ChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case UnknownWord:
		return "unknown word"
	case BadLength:
		return "bad length"
	case ChecksumMismatch:
		return "checksum mismatch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DecodeError reports why a line is not a valid mnemonic.
type DecodeError struct {
	Kind Kind
	// Word is the offending word for UnknownWord.
	Word string
	// Words is the number of words found for BadLength.
	Words int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnknownWord:
		return fmt.Sprintf("%v: %q", kerrors.ErrUnknownWord, e.Word)
	case BadLength:
		return fmt.Sprintf("%v, got %d", kerrors.ErrBadLength, e.Words)
	default:
		return kerrors.ErrChecksumMismatch.Error()
	}
}

// Unwrap maps the kind onto the sentinel in internal/errors.
func (e *DecodeError) Unwrap() error {
	switch e.Kind {
	case UnknownWord:
		return kerrors.ErrUnknownWord
	case BadLength:
		return kerrors.ErrBadLength
	default:
		return kerrors.ErrChecksumMismatch
	}
}

// BIP39 is the English BIP39 codec.
type BIP39 struct{}

// Encode returns the 24-word mnemonic for s.
func (BIP39) Encode(s *Secret) string {
	m, err := bip39.NewMnemonic(s[:])
	if err != nil {
		// 32 bytes is always valid BIP39 entropy.
		panic(fmt.Sprintf("mnemonic: encoding 256-bit entropy: %v", err))
	}
	return m
}

// Decode parses text into a Secret. Surrounding and repeated whitespace is
// ignored and words are matched case-insensitively.
func (BIP39) Decode(text string) (Secret, error) {
	var s Secret

	words := strings.Fields(strings.ToLower(text))
	if len(words) != WordCount {
		return s, &DecodeError{Kind: BadLength, Words: len(words)}
	}
	for _, w := range words {
		if _, ok := bip39.GetWordIndex(w); !ok {
			return s, &DecodeError{Kind: UnknownWord, Word: w}
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(words, " "))
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return s, &DecodeError{Kind: ChecksumMismatch}
		}
		return s, fmt.Errorf("decoding mnemonic: %w", err)
	}
	if len(entropy) != Size {
		return s, &DecodeError{Kind: BadLength, Words: len(words)}
	}
	copy(s[:], entropy)
	return s, nil
}

// Default is the codec used by the package-level helpers.
var Default Codec = BIP39{}

// Encode encodes s with the default codec.
func Encode(s *Secret) string {
	return Default.Encode(s)
}

// Decode decodes text with the default codec.
func Decode(text string) (Secret, error) {
	return Default.Decode(text)
}
