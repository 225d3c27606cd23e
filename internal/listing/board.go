package listing

import (
	"fmt"
	"log/slog"

	"github.com/amishk599/postings/internal/applied"
	"github.com/amishk599/postings/internal/model"
)

// ClearAllPrompt is the question put to the user before clearing.
const ClearAllPrompt = "Remove all applied jobs?"

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// View is everything the browser renders for one set of criteria.
type View struct {
	Jobs    []model.Job  // filtered and sorted listing
	Applied []model.Job  // applied jobs in catalog order
	IDs     *applied.Set // snapshot of the applied set
	Stale   []int        // applied IDs with no catalog job
}

// IsApplied reports whether id was in the applied set when the view was built.
func (v View) IsApplied(id int) bool {
	return v.IDs.Contains(id)
}

// Board owns the catalog and the applied set. Every change to the set is
// written back through the repository before the call returns.
type Board struct {
	jobs    []model.Job
	known   map[int]bool
	applied *applied.Set
	repo    model.AppliedRepository
	logger  *slog.Logger
}

// NewBoard loads the applied set from repo. A failed or malformed load starts
// from an empty set.
func NewBoard(jobs []model.Job, repo model.AppliedRepository, logger *slog.Logger) *Board {
	known := make(map[int]bool, len(jobs))
	for _, j := range jobs {
		known[j.ID] = true
	}

	set, err := repo.Load()
	if err != nil {
		logger.Debug("discarding unreadable applied ids", "error", err)
		set = applied.NewSet()
	}

	b := &Board{
		jobs:    jobs,
		known:   known,
		applied: set,
		repo:    repo,
		logger:  logger,
	}
	if stale := StaleIDs(jobs, set); len(stale) > 0 {
		logger.Debug("applied ids reference unknown jobs", "ids", stale)
	}
	return b
}

// Jobs returns the full catalog in its original order.
func (b *Board) Jobs() []model.Job {
	return b.jobs
}

// Applied returns a copy of the applied set.
func (b *Board) Applied() *applied.Set {
	return b.applied.Clone()
}

func (b *Board) IsApplied(id int) bool {
	return b.applied.Contains(id)
}

// Apply marks id as applied. Applying twice is a no-op.
func (b *Board) Apply(id int) error {
	if !b.known[id] {
		return &model.JobNotFoundError{ID: id}
	}
	if !b.applied.Add(id) {
		return nil
	}
	b.logger.Debug("applied", "job_id", id, "applied", b.applied.Len())
	return b.save()
}

// Unapply removes id from the applied set. Unapplying an id that is not in
// the set is a no-op, whether or not the catalog carries it. Stale IDs can
// still be removed.
func (b *Board) Unapply(id int) error {
	if !b.applied.Remove(id) {
		return nil
	}
	b.logger.Debug("unapplied", "job_id", id, "applied", b.applied.Len())
	return b.save()
}

// ClearAll empties the applied set once c approves. It reports whether the
// set was cleared.
func (b *Board) ClearAll(c Confirmer) (bool, error) {
	if !c.Confirm(ClearAllPrompt) {
		return false, nil
	}
	b.applied.Clear()
	b.logger.Debug("cleared applied jobs")
	return true, b.save()
}

// View derives the listing and applied list for the given criteria.
func (b *Board) View(c Criteria) View {
	return View{
		Jobs:    Derive(b.jobs, c),
		Applied: AppliedJobs(b.jobs, b.applied),
		IDs:     b.applied.Clone(),
		Stale:   StaleIDs(b.jobs, b.applied),
	}
}

func (b *Board) save() error {
	if err := b.repo.Save(b.applied); err != nil {
		return fmt.Errorf("saving applied ids: %w", err)
	}
	return nil
}
