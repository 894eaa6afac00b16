package audit

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	ID        string `json:"id"` // Unique per run.
	Operation string `json:"op"` // gen, split or xor.

	Sources      []string          `json:"sources,omitempty"`
	Outputs      []string          `json:"outputs,omitempty"`
	Lines        int               `json:"lines"`
	Fingerprints map[string]string `json:"fingerprints,omitempty"` // Output path to BLAKE2b-256 hex.
}

// NewEntry returns an entry for op with a fresh ID.
func NewEntry(op string) Entry {
	return Entry{ID: uuid.NewString(), Operation: op}
}

// Fingerprint returns the hex BLAKE2b-256 digest of the file at path.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// AddOutputs records outputs and fingerprints each of them. Files that
// can't be hashed are listed without a fingerprint.
func (e *Entry) AddOutputs(paths ...string) {
	for _, p := range paths {
		e.Outputs = append(e.Outputs, p)
		sum, err := Fingerprint(p)
		if err != nil {
			continue
		}
		if e.Fingerprints == nil {
			e.Fingerprints = make(map[string]string)
		}
		e.Fingerprints[p] = sum
	}
}

// Log appends an entry to the audit log at logPath. An empty logPath
// disables logging.
func Log(logPath string, entry Entry) error {
	if logPath == "" {
		return nil
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	data, err := os.ReadFile(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
