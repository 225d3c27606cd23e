// Package applied holds the set of job IDs the user has marked as applied and
// its storage encoding.
package applied

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Set is the collection of applied job IDs. It has a single owner and is not
// safe for concurrent use.
type Set struct {
	ids mapset.Set[int]
}

// NewSet returns a set holding the given IDs.
func NewSet(ids ...int) *Set {
	return &Set{ids: mapset.NewThreadUnsafeSet(ids...)}
}

// Add inserts id and reports whether the set changed.
func (s *Set) Add(id int) bool {
	return s.ids.Add(id)
}

// Remove deletes id and reports whether the set changed.
func (s *Set) Remove(id int) bool {
	if !s.ids.Contains(id) {
		return false
	}
	s.ids.Remove(id)
	return true
}

// Contains reports whether id has been applied to.
func (s *Set) Contains(id int) bool {
	return s.ids.Contains(id)
}

func (s *Set) Len() int {
	return s.ids.Cardinality()
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids.Clear()
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []int {
	ids := s.ids.ToSlice()
	slices.Sort(ids)
	return ids
}

func (s *Set) Clone() *Set {
	return &Set{ids: s.ids.Clone()}
}

func (s *Set) Equal(other *Set) bool {
	return s.ids.Equal(other.ids)
}

// MarshalJSON encodes the set as an ascending JSON array of integers.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON accepts a JSON array of integers or null.
func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("decoding applied ids: %w", err)
	}
	s.ids = mapset.NewThreadUnsafeSet(ids...)
	return nil
}

// Encode returns the stored string form of s.
func Encode(s *Set) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding applied ids: %w", err)
	}
	return string(data), nil
}

// Decode parses the stored string form. An empty string decodes to an empty set.
func Decode(raw string) (*Set, error) {
	if strings.TrimSpace(raw) == "" {
		return NewSet(), nil
	}
	s := NewSet()
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		return nil, err
	}
	return s, nil
}
