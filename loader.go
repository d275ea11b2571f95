package stash

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadStash opens, decodes and updates the ledger file at path.
func LoadStash(path string) (*Stash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStash(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return s, nil
}

// SaveStash writes s to path, creating the parent directories if needed.
func SaveStash(path string, s *Stash) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeStash(file, s)
}

// ImportStash loads the ledger at path and merges it into s.
// s is unchanged if the file cannot be loaded or holds another asset.
func ImportStash(s *Stash, path string) (*Stash, error) {
	o, err := LoadStash(path)
	if err != nil {
		return nil, err
	}
	if err := s.Merge(o); err != nil {
		return nil, fmt.Errorf("could not import %q: %w", path, err)
	}
	return o, nil
}
