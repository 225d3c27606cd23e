package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/postings/internal/model"
)

// NoAppliedMessage is shown when nothing has been applied to.
const NoAppliedMessage = "No applied jobs yet."

// AppliedRow is one entry of the applied list.
type AppliedRow struct {
	ID          int
	Title       string
	Description string
	Unapply     Action
}

// AppliedListView is what the applied pane shows.
type AppliedListView struct {
	Rows []AppliedRow
}

// NewAppliedListView builds the applied pane for jobs, each with an Unapply action.
func NewAppliedListView(jobs []model.Job) AppliedListView {
	rows := make([]AppliedRow, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, AppliedRow{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Unapply:     Action{Label: "Unapply", Enabled: true},
		})
	}
	return AppliedListView{Rows: rows}
}

func (v AppliedListView) Empty() bool {
	return len(v.Rows) == 0
}

func renderAppliedList(v AppliedListView, cursor int, active bool, width int) string {
	if v.Empty() {
		return "  " + rowDescStyle.Render(NoAppliedMessage)
	}
	clip := lipgloss.NewStyle().MaxWidth(max(width, 10))

	var b strings.Builder
	for i, r := range v.Rows {
		titleSt, descSt, prefix := rowTitleStyle, rowDescStyle, "  "
		if active && i == cursor {
			titleSt, descSt, prefix = selectedRowTitleStyle, selectedRowDescStyle, "> "
		}
		b.WriteString(clip.Render(prefix + titleSt.Render(r.Title)))
		b.WriteByte('\n')
		b.WriteString(clip.Render(prefix + descSt.Render(r.Description)))
		b.WriteByte('\n')
		b.WriteString(clip.Render(prefix + renderAction(r.Unapply, "u")))
		b.WriteByte('\n')
		if i < len(v.Rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
