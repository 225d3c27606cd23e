package filter

import (
	"strings"

	"github.com/amishk599/postings/internal/model"
)

// QueryFilter matches jobs whose title or description contains the query.
// Matching is case-insensitive and an empty query matches every job.
type QueryFilter struct {
	query string
}

// NewQueryFilter trims and lowercases the query once up front.
func NewQueryFilter(query string) *QueryFilter {
	return &QueryFilter{query: strings.ToLower(strings.TrimSpace(query))}
}

// Match returns true if the title or description contains the query.
func (f *QueryFilter) Match(job model.Job) bool {
	if f.query == "" {
		return true
	}
	for _, v := range []string{job.Title, job.Description} {
		if strings.Contains(strings.ToLower(v), f.query) {
			return true
		}
	}
	return false
}

// All returns the jobs that pass every filter, in input order.
func All(jobs []model.Job, filters ...model.JobFilter) []model.Job {
	out := make([]model.Job, 0, len(jobs))
next:
	for _, j := range jobs {
		for _, f := range filters {
			if !f.Match(j) {
				continue next
			}
		}
		out = append(out, j)
	}
	return out
}
