// Package mnemonic converts 256-bit secrets to and from 24-word BIP39
// mnemonic phrases.
//
// A Secret is always exactly 32 bytes. Encoding is total: every Secret has a
// mnemonic. Decoding normalizes whitespace and case, then rejects phrases
// with unknown words, a word count other than 24, or a bad checksum:
//
//	s, err := mnemonic.Decode(line)
//	var de *mnemonic.DecodeError
//	if errors.As(err, &de) && de.Kind == mnemonic.ChecksumMismatch {
//	    // ...
//	}
//
// The wordlist and checksum arithmetic live in github.com/tyler-smith/go-bip39
// behind the Codec interface.
package mnemonic
