package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amishk599/postings/internal/applied"
)

// FileStore keeps key/value pairs in a JSON object file. Keys it does not
// know about are preserved on save.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored applied set, or an empty set if the file or key
// does not exist yet.
func (s *FileStore) Load() (*applied.Set, error) {
	values, err := s.read()
	if err != nil {
		return nil, err
	}
	raw, ok := values[AppliedKey]
	if !ok {
		return applied.NewSet(), nil
	}
	return applied.Decode(string(raw))
}

// Save rewrites the file with the new applied set.
func (s *FileStore) Save(set *applied.Set) error {
	values, err := s.read()
	if err != nil {
		// Unreadable contents are replaced rather than blocking every save.
		values = make(map[string]json.RawMessage)
	}
	raw, err := applied.Encode(set)
	if err != nil {
		return err
	}
	values[AppliedKey] = json.RawMessage(raw)
	return s.write(values)
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if values == nil {
		values = make(map[string]json.RawMessage)
	}
	return values, nil
}

func (s *FileStore) write(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
