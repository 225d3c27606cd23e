package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/amishk599/postings/internal/filter"
	"github.com/amishk599/postings/internal/model"
)

// Action is a button on a row. Disabled actions are rendered dimmed and
// ignored by the key handlers.
type Action struct {
	Label   string
	Enabled bool
}

// RowView is what a single listing row shows for one job.
type RowView struct {
	ID          int
	Title       string
	Description string
	Added       string // "Added: Jan 12, 2025", empty when the job has no date
	Apply       Action
	Unapply     Action
}

// NewRowView builds the row for job. Apply is disabled once applied and
// Unapply is disabled until then. When relative is set the added label also
// carries the age relative to now.
func NewRowView(job model.Job, isApplied bool, now time.Time, relative bool) RowView {
	applyLabel := "Apply"
	if isApplied {
		applyLabel = "Applied"
	}
	return RowView{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Added:       addedLabel(job.Date, now, relative),
		Apply:       Action{Label: applyLabel, Enabled: !isApplied},
		Unapply:     Action{Label: "Unapply", Enabled: isApplied},
	}
}

func addedLabel(date string, now time.Time, relative bool) string {
	if date == "" {
		return ""
	}
	d, ok := filter.ParseDate(date)
	if !ok {
		return "Added: " + date
	}
	label := "Added: " + d.Format("Jan 2, 2006")
	if relative {
		label += " (" + humanize.RelTime(d, now, "ago", "from now") + ")"
	}
	return label
}

// Lines per row in either pane (title + description + actions + blank separator).
const rowHeight = 4

var (
	rowTitleStyle = lipgloss.NewStyle().
			Bold(true)

	rowDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedRowTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	selectedRowDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	pillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	enabledActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("33")).
				Padding(0, 1)

	disabledActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)
)

func renderAction(a Action, key string) string {
	if !a.Enabled {
		return disabledActionStyle.Render(a.Label)
	}
	return enabledActionStyle.Render(fmt.Sprintf("%s (%s)", a.Label, key))
}

// renderRow draws one listing row clipped to width.
func renderRow(r RowView, selected bool, width int) string {
	titleSt, descSt, prefix := rowTitleStyle, rowDescStyle, "  "
	if selected {
		titleSt, descSt, prefix = selectedRowTitleStyle, selectedRowDescStyle, "> "
	}
	clip := lipgloss.NewStyle().MaxWidth(max(width, 10))

	title := prefix + titleSt.Render(r.Title)
	if r.Added != "" {
		title += "  " + pillStyle.Render(r.Added)
	}

	var b strings.Builder
	b.WriteString(clip.Render(title))
	b.WriteByte('\n')
	b.WriteString(clip.Render(prefix + descSt.Render(r.Description)))
	b.WriteByte('\n')
	b.WriteString(clip.Render(prefix + renderAction(r.Apply, "a") + " " + renderAction(r.Unapply, "u")))
	return b.String()
}

// renderRows draws the whole listing pane.
func renderRows(rows []RowView, cursor int, active bool, width int) string {
	if len(rows) == 0 {
		return "  " + NoMatchesMessage
	}
	var b strings.Builder
	for i, r := range rows {
		b.WriteString(renderRow(r, active && i == cursor, width))
		b.WriteByte('\n')
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// NoMatchesMessage is shown when the derived listing is empty.
const NoMatchesMessage = "No jobs match your search."
