package listing

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/amishk599/postings/internal/applied"
	"github.com/amishk599/postings/internal/catalog"
	"github.com/amishk599/postings/internal/model"
)

// --- Fakes ---

// memRepo keeps the encoded set so round-trips go through the wire format.
type memRepo struct {
	raw     string
	loadErr error
	saveErr error
	saves   int
}

func (r *memRepo) Load() (*applied.Set, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return applied.Decode(r.raw)
}

func (r *memRepo) Save(set *applied.Set) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	raw, err := applied.Encode(set)
	if err != nil {
		return err
	}
	r.raw = raw
	r.saves++
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(jobs []model.Job) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func approve() Confirmer {
	return ConfirmFunc(func(string) bool { return true })
}

// --- Derive ---

func TestDerive_QueryMatchesTitleOrDescription(t *testing.T) {
	got := Derive(catalog.Seed(), Criteria{Query: "react"})
	assert.ElementsMatch(t, []int{1, 3, 4}, ids(got))
}

func TestDerive_NewestOrder(t *testing.T) {
	got := Derive(catalog.Seed(), Criteria{Sort: model.SortNewest})
	assert.Equal(t, []int{13, 6, 14, 4, 9, 7, 10, 2, 12, 8, 3, 15, 11, 1, 5}, ids(got))
}

func TestDerive_EmptySortDefaultsToNewest(t *testing.T) {
	a := Derive(catalog.Seed(), Criteria{})
	b := Derive(catalog.Seed(), Criteria{Sort: model.SortNewest})
	assert.Equal(t, ids(b), ids(a))
}

func TestDerive_NewestPutsUndatedLast(t *testing.T) {
	jobs := []model.Job{
		{ID: 1, Title: "a", Date: ""},
		{ID: 2, Title: "b", Date: "2025-01-01"},
		{ID: 3, Title: "c", Date: "not a date"},
		{ID: 4, Title: "d", Date: "2025-03-01"},
	}
	got := Derive(jobs, Criteria{Sort: model.SortNewest})
	assert.Equal(t, []int{4, 2, 1, 3}, ids(got))
}

func TestDerive_TitleAscending(t *testing.T) {
	got := Derive(catalog.Seed(), Criteria{Sort: model.SortTitle, Locale: language.English})
	require.Len(t, got, 15)
	assert.Equal(t, "Accessibility Engineer", got[0].Title)
	assert.Equal(t, "API Engineer", got[1].Title)
	assert.Equal(t, "Automation Engineer", got[2].Title)
	assert.Equal(t, "Web Developer", got[14].Title)
}

func TestDerive_TitleDescIsReverseOfAscending(t *testing.T) {
	for _, tag := range []language.Tag{language.Und, language.English, language.German} {
		asc := Derive(catalog.Seed(), Criteria{Sort: model.SortTitle, Locale: tag})
		desc := Derive(catalog.Seed(), Criteria{Sort: model.SortTitleDesc, Locale: tag})
		reversed := ids(asc)
		slices.Reverse(reversed)
		assert.Equal(t, reversed, ids(desc), "locale %s", tag)
	}
}

func TestDerive_DoesNotReorderInput(t *testing.T) {
	jobs := catalog.Seed()
	Derive(jobs, Criteria{Sort: model.SortTitle})
	assert.Equal(t, ids(catalog.Seed()), ids(jobs))
}

func TestDerive_DateWindowAgainstSeed(t *testing.T) {
	got := Derive(catalog.Seed(), Criteria{From: "2025-02-01", To: "2025-02-10"})
	assert.Equal(t, []int{9, 7, 10, 2, 12}, ids(got))
	for _, j := range got {
		assert.GreaterOrEqual(t, j.Date, "2025-02-01")
		assert.LessOrEqual(t, j.Date, "2025-02-10")
	}
}

func TestDerive_NoMatches(t *testing.T) {
	got := Derive(catalog.Seed(), Criteria{Query: "cobol"})
	assert.Empty(t, got)
}

// --- AppliedJobs ---

func TestAppliedJobs_CatalogOrder(t *testing.T) {
	got := AppliedJobs(catalog.Seed(), applied.NewSet(9, 2, 5))
	assert.Equal(t, []int{2, 5, 9}, ids(got))
}

func TestAppliedJobs_SkipsStaleIDs(t *testing.T) {
	set := applied.NewSet(1, 99)
	assert.Equal(t, []int{1}, ids(AppliedJobs(catalog.Seed(), set)))
	assert.Equal(t, []int{99}, StaleIDs(catalog.Seed(), set))
}

// --- Board ---

func TestBoard_LoadsPersistedSet(t *testing.T) {
	repo := &memRepo{raw: "[2,5,9]"}
	b := NewBoard(catalog.Seed(), repo, discardLogger())
	assert.Equal(t, []int{2, 5, 9}, b.Applied().IDs())
}

func TestBoard_LoadFailureStartsEmpty(t *testing.T) {
	tests := []struct {
		name string
		repo *memRepo
	}{
		{name: "read error", repo: &memRepo{loadErr: errors.New("disk on fire")}},
		{name: "malformed json", repo: &memRepo{raw: "[1,2"}},
		{name: "wrong shape", repo: &memRepo{raw: `{"ids":[1]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(catalog.Seed(), tt.repo, discardLogger())
			assert.Equal(t, 0, b.Applied().Len())
		})
	}
}

func TestBoard_ApplyIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	require.NoError(t, b.Apply(3))
	once := b.Applied()
	require.NoError(t, b.Apply(3))

	assert.True(t, once.Equal(b.Applied()))
	assert.Equal(t, 1, repo.saves, "no-op apply should not rewrite storage")
}

func TestBoard_ApplyThenUnapplyRestores(t *testing.T) {
	repo := &memRepo{raw: "[4]"}
	b := NewBoard(catalog.Seed(), repo, discardLogger())
	before := b.Applied()

	require.NoError(t, b.Apply(7))
	require.NoError(t, b.Unapply(7))

	assert.True(t, before.Equal(b.Applied()))
	assert.Equal(t, "[4]", repo.raw)
}

func TestBoard_UnapplyNotApplied(t *testing.T) {
	repo := &memRepo{}
	b := NewBoard(catalog.Seed(), repo, discardLogger())
	require.NoError(t, b.Unapply(3))
	assert.Equal(t, 0, repo.saves)
}

func TestBoard_UnknownJob(t *testing.T) {
	b := NewBoard(catalog.Seed(), &memRepo{}, discardLogger())

	var nf *model.JobNotFoundError
	require.ErrorAs(t, b.Apply(42), &nf)
	assert.Equal(t, 42, nf.ID)
}

func TestBoard_UnapplyUnknownIsNoOp(t *testing.T) {
	repo := &memRepo{raw: "[1]"}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	require.NoError(t, b.Unapply(42))
	require.NoError(t, b.Unapply(42))
	assert.Equal(t, []int{1}, b.Applied().IDs())
	assert.Equal(t, 0, repo.saves)
}

func TestBoard_UnapplyStaleID(t *testing.T) {
	repo := &memRepo{raw: "[1,42]"}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	require.NoError(t, b.Unapply(42))
	assert.Equal(t, "[1]", repo.raw)
}

func TestBoard_WritesThroughEveryMutation(t *testing.T) {
	repo := &memRepo{}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	require.NoError(t, b.Apply(9))
	assert.Equal(t, "[9]", repo.raw)
	require.NoError(t, b.Apply(2))
	assert.Equal(t, "[2,9]", repo.raw)
	require.NoError(t, b.Unapply(9))
	assert.Equal(t, "[2]", repo.raw)
}

func TestBoard_SaveErrorKeepsMutation(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("read-only")}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	err := b.Apply(1)
	require.Error(t, err)
	assert.True(t, b.IsApplied(1))
}

func TestBoard_ClearAllRequiresConfirmation(t *testing.T) {
	repo := &memRepo{raw: "[1,2,3]"}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	var asked string
	cleared, err := b.ClearAll(ConfirmFunc(func(p string) bool {
		asked = p
		return false
	}))
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Equal(t, ClearAllPrompt, asked)
	assert.Equal(t, 3, b.Applied().Len())
	assert.Equal(t, 0, repo.saves)

	cleared, err = b.ClearAll(approve())
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Equal(t, 0, b.Applied().Len())
	assert.Equal(t, "[]", repo.raw)
}

func TestBoard_ViewIsSnapshot(t *testing.T) {
	b := NewBoard(catalog.Seed(), &memRepo{}, discardLogger())
	require.NoError(t, b.Apply(1))

	v := b.View(Criteria{})
	require.NoError(t, b.Apply(2))

	assert.True(t, v.IsApplied(1))
	assert.False(t, v.IsApplied(2))
	assert.Equal(t, []int{1}, ids(v.Applied))
}

func TestBoard_EndToEnd(t *testing.T) {
	repo := &memRepo{}
	b := NewBoard(catalog.Seed(), repo, discardLogger())

	v := b.View(Criteria{Query: "frontend"})
	assert.Contains(t, ids(v.Jobs), 1)

	require.NoError(t, b.Apply(1))
	v = b.View(Criteria{Query: "frontend"})
	assert.Equal(t, []int{1}, ids(v.Applied))
	assert.True(t, v.IsApplied(1))

	require.NoError(t, b.Unapply(1))
	v = b.View(Criteria{Query: "frontend"})
	assert.Empty(t, v.Applied)
}

func TestBoard_PersistsAcrossSessions(t *testing.T) {
	repo := &memRepo{}
	first := NewBoard(catalog.Seed(), repo, discardLogger())
	for _, id := range []int{2, 5, 9} {
		require.NoError(t, first.Apply(id))
	}

	second := NewBoard(catalog.Seed(), repo, discardLogger())
	assert.True(t, applied.NewSet(2, 5, 9).Equal(second.Applied()))
}
