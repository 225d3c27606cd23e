package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/postings/internal/model"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// sortPicker is the overlay used to choose a sort mode.
type sortPicker struct {
	cursor int
}

func newSortPicker(current model.SortMode) sortPicker {
	p := sortPicker{}
	for i, m := range model.SortModes {
		if m == current {
			p.cursor = i
		}
	}
	return p
}

// update handles a key and reports the chosen mode once the user confirms.
// done is true when the picker should close.
func (p sortPicker) update(key string) (sortPicker, model.SortMode, bool) {
	switch key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(model.SortModes)-1 {
			p.cursor++
		}
	case "enter":
		return p, model.SortModes[p.cursor], true
	case "esc", "q":
		return p, "", true
	}
	return p, "", false
}

func (p sortPicker) view() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Sort jobs"))
	b.WriteByte('\n')

	for i, m := range model.SortModes {
		if i == p.cursor {
			b.WriteString(pickerSelectedStyle.Render("> " + m.Label()))
		} else {
			b.WriteString(pickerItemStyle.Render(m.Label()))
		}
		b.WriteByte('\n')
	}

	b.WriteString(pickerHintStyle.Render("↑/↓/j/k navigate  enter select  esc cancel"))
	return b.String()
}
