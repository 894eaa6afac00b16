// Package audit records seedxor operations in a JSON Lines log.
//
// Each gen, split and xor run that produces files appends one Entry to the
// file configured as audit.path. Entries list source and output paths, the
// line count and a BLAKE2b-256 fingerprint of every output file, so a later
// reader can confirm a share file is the one that was written. Secrets and
// mnemonics are never logged.
//
// Logging is best effort: a failure to write the log never fails the
// operation that produced the entry.
package audit
