// Package listing derives what the browser shows from the catalog, the
// user's controls and the applied set, and owns the applied set itself.
package listing

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amishk599/postings/internal/applied"
	"github.com/amishk599/postings/internal/filter"
	"github.com/amishk599/postings/internal/model"
)

// Criteria are the user's current search, sort and date-range controls.
type Criteria struct {
	Query  string
	Sort   model.SortMode // empty means newest
	From   string         // inclusive start date, optional
	To     string         // inclusive end date, optional
	Locale language.Tag   // collation for title sorts; zero value is the root collation
}

// Derive filters jobs by query and date window and orders the result.
// The input slice is left untouched.
func Derive(jobs []model.Job, c Criteria) []model.Job {
	out := filter.All(jobs,
		filter.NewQueryFilter(c.Query),
		filter.NewDateWindow(c.From, c.To),
	)
	Sort(out, c.Sort, c.Locale)
	return out
}

// Sort orders jobs in place. Newest puts jobs with a missing or unparseable
// date last. Ties keep their existing order.
func Sort(jobs []model.Job, mode model.SortMode, locale language.Tag) {
	switch mode {
	case model.SortTitle, model.SortTitleDesc:
		col := collate.New(locale)
		sign := 1
		if mode == model.SortTitleDesc {
			sign = -1
		}
		slices.SortStableFunc(jobs, func(a, b model.Job) int {
			return sign * col.CompareString(a.Title, b.Title)
		})
	default:
		sortNewest(jobs)
	}
}

func sortNewest(jobs []model.Job) {
	dates := make(map[int]time.Time, len(jobs))
	for _, j := range jobs {
		if d, ok := filter.ParseDate(j.Date); ok {
			dates[j.ID] = d
		}
	}
	slices.SortStableFunc(jobs, func(a, b model.Job) int {
		da, okA := dates[a.ID]
		db, okB := dates[b.ID]
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return db.Compare(da)
	})
}

// AppliedJobs returns the jobs whose ID is in set, in catalog order.
func AppliedJobs(jobs []model.Job, set *applied.Set) []model.Job {
	out := make([]model.Job, 0, set.Len())
	for _, j := range jobs {
		if set.Contains(j.ID) {
			out = append(out, j)
		}
	}
	return out
}

// StaleIDs returns IDs in set that no catalog job carries, ascending.
func StaleIDs(jobs []model.Job, set *applied.Set) []int {
	known := make(map[int]bool, len(jobs))
	for _, j := range jobs {
		known[j.ID] = true
	}
	var stale []int
	for _, id := range set.IDs() {
		if !known[id] {
			stale = append(stale, id)
		}
	}
	return stale
}
