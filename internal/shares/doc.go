// Package shares splits mnemonic-encoded secrets into XOR shares and
// recombines them.
//
// Split reads one secret per line and writes N shares per line: N-1 fresh
// random pads and one residual share equal to the secret XORed with every
// pad. Any single share is independent of the secret; all N are needed to
// rebuild it.
//
// Combine reads one line from every source per round and writes the XOR of
// the decoded values. It is the inverse of Split, and more generally an
// order-independent N-way XOR over any mnemonic files of equal length. All
// sources must end on the same round:
//
//	n, err := shares.New().Combine(readers, out)
//	if errors.Is(err, kerrors.ErrFileEndedEarly) {
//	    // a later file was shorter than the first
//	}
//
// The package works on linestream readers and writers only. Opening and
// creating files is left to internal/workflows.
package shares
