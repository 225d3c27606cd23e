package filter

import (
	"strings"
	"time"

	"github.com/amishk599/postings/internal/model"
)

// DateLayout is the calendar date format used by job dates and range bounds.
const DateLayout = "2006-01-02"

// ParseDate parses a job date or range bound as a UTC calendar date. Full
// RFC 3339 timestamps are accepted as well.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// DateWindow keeps jobs added between From and To, both inclusive.
// Jobs without a date, or with a date that does not parse, always pass.
// An empty or unparseable bound is treated as unset.
type DateWindow struct {
	from    time.Time
	to      time.Time // end of the To day
	hasFrom bool
	hasTo   bool
}

// NewDateWindow builds a window from two optional date strings.
func NewDateWindow(from, to string) *DateWindow {
	w := &DateWindow{}
	if t, ok := ParseDate(from); ok {
		w.from, w.hasFrom = t, true
	}
	if t, ok := ParseDate(to); ok {
		w.to, w.hasTo = endOfDay(t), true
	}
	return w
}

// Match reports whether the job falls inside the window.
func (w *DateWindow) Match(job model.Job) bool {
	if job.Date == "" {
		return true
	}
	d, ok := ParseDate(job.Date)
	if !ok {
		return true
	}
	if w.hasFrom && d.Before(w.from) {
		return false
	}
	if w.hasTo && d.After(w.to) {
		return false
	}
	return true
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Millisecond), t.Location())
}
