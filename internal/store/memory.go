package store

import "github.com/amishk599/postings/internal/applied"

// MemoryStore keeps the encoded set in memory only. Used for --ephemeral
// sessions, so nothing outlives the process.
type MemoryStore struct {
	raw string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*applied.Set, error) { return applied.Decode(s.raw) }

func (s *MemoryStore) Save(set *applied.Set) error {
	raw, err := applied.Encode(set)
	if err != nil {
		return err
	}
	s.raw = raw
	return nil
}
