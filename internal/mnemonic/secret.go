package mnemonic

// Size is the length in bytes of every secret handled by seedxor.
const Size = 32

// Secret is 256 bits of entropy.
type Secret [Size]byte

// XOR folds other into s bytewise.
func (s *Secret) XOR(other *Secret) {
	for i := range s {
		s[i] ^= other[i]
	}
}

// Zero overwrites the secret with zero bytes.
func (s *Secret) Zero() {
	*s = Secret{}
}

// IsZero reports whether every byte of the secret is zero.
func (s *Secret) IsZero() bool {
	return *s == Secret{}
}
