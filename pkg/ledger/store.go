package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store defines the persistence interface for the ledger file.
type Store interface {
	// Load reads the full entry sequence. A missing file is an empty ledger.
	Load() ([]Entry, error)

	// Save overwrites the file with the full entry sequence.
	Save(entries []Entry) error

	// Path returns the ledger file path.
	Path() string
}

// FileStore is a JSON file implementation of Store.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given ledger file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the ledger file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the ledger file.
// Returns an empty sequence when the file does not exist, and a *ParseError
// when the file cannot be decoded or contains invalid entries.
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	for i, e := range entries {
		if !e.Type.Valid() {
			return nil, &ParseError{Path: s.path, Err: fmt.Errorf("entry %d: unknown type %q", i, e.Type)}
		}
		if e.Amount <= 0 {
			return nil, &ParseError{Path: s.path, Err: fmt.Errorf("entry %d: amount must be positive", i)}
		}
		if _, err := time.Parse(DateLayout, e.Date); err != nil {
			return nil, &ParseError{Path: s.path, Err: fmt.Errorf("entry %d: date %q must be YYYY-MM-DD", i, e.Date)}
		}
	}

	return entries, nil
}

// Save serializes the full sequence and replaces the ledger file.
// The snapshot is written to a temp file in the same directory and renamed
// over the target, so the file always holds a complete valid document.
func (s *FileStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger file: %w", err)
	}

	return nil
}
