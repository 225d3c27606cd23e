package model

import "github.com/amishk599/postings/internal/applied"

// Job is a single immutable posting in the catalog.
type Job struct {
	ID          int    // unique within the catalog
	Title       string // job title
	Description string // short description, searched alongside the title
	Date        string // ISO-8601 date the posting was added, optional
}

// SortMode orders the derived listing.
type SortMode string

const (
	SortNewest    SortMode = "newest"     // descending by date
	SortTitle     SortMode = "title"      // title A–Z
	SortTitleDesc SortMode = "title_desc" // title Z–A
)

// SortModes lists every mode in display order.
var SortModes = []SortMode{SortNewest, SortTitle, SortTitleDesc}

// Label returns the human-readable name shown in pickers and status bars.
func (s SortMode) Label() string {
	switch s {
	case SortTitle:
		return "Title (A–Z)"
	case SortTitleDesc:
		return "Title (Z–A)"
	default:
		return "Newest"
	}
}

// Valid reports whether s is one of the known sort modes.
func (s SortMode) Valid() bool {
	for _, m := range SortModes {
		if s == m {
			return true
		}
	}
	return false
}

// AppliedRepository loads and saves the set of applied job IDs.
type AppliedRepository interface {
	Load() (*applied.Set, error)
	Save(set *applied.Set) error
}

// JobFilter decides whether a job stays in the listing.
type JobFilter interface {
	Match(job Job) bool
}
