package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/amishk599/postings/internal/listing"
	"github.com/amishk599/postings/internal/model"
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusFrom
	focusTo
	focusSort
	focusConfirm
)

const (
	paneJobs    = 0
	paneApplied = 1
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")) // bright blue

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")) // dim gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	controlLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
)

// Options configures a browse session.
type Options struct {
	Sort          model.SortMode
	Locale        language.Tag
	RelativeDates bool
}

type browseModel struct {
	board    *listing.Board
	criteria listing.Criteria
	view     listing.View
	rows     []RowView
	applied  AppliedListView

	relativeDates bool
	now           func() time.Time

	search textinput.Model
	from   textinput.Model
	to     textinput.Model

	jobsViewport    viewport.Model
	appliedViewport viewport.Model
	activePane      int
	jobsCursor      int
	appliedCursor   int
	focus           focus
	picker          sortPicker
	width           int
	height          int
	ready           bool

	status    string
	statusErr bool
}

func newInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func newBrowseModel(board *listing.Board, opts Options) browseModel {
	sortMode := opts.Sort
	if !sortMode.Valid() {
		sortMode = model.SortNewest
	}
	m := browseModel{
		board:         board,
		criteria:      listing.Criteria{Sort: sortMode, Locale: opts.Locale},
		relativeDates: opts.RelativeDates,
		now:           time.Now,
		search:        newInput("Search by title or description", 64, 32),
		from:          newInput("YYYY-MM-DD", 10, 10),
		to:            newInput("YYYY-MM-DD", 10, 10),
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch, focusFrom, focusTo:
			return m.updateInput(msg)
		case focusSort:
			return m.updateSortPicker(msg)
		case focusConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		return m.focusInput(focusSearch)
	case "f":
		return m.focusInput(focusFrom)
	case "t":
		return m.focusInput(focusTo)
	case "x":
		m.from.SetValue("")
		m.to.SetValue("")
		m.refresh()
		return m, nil
	case "s":
		m.picker = newSortPicker(m.criteria.Sort)
		m.focus = focusSort
		return m, nil
	case "a":
		if id, ok := m.selectedJob(); ok && m.activePane == paneJobs && !m.view.IsApplied(id) {
			m.mutate(m.board.Apply(id), "applied to job %d", id)
		}
		return m, nil
	case "u":
		if id, ok := m.selectedJob(); ok && m.view.IsApplied(id) {
			m.mutate(m.board.Unapply(id), "unapplied job %d", id)
		}
		return m, nil
	case "C":
		if len(m.view.Applied) > 0 {
			m.focus = focusConfirm
		}
		return m, nil
	case "tab", "left", "right":
		m.activePane = 1 - m.activePane
		m.recalcContent()
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		m.recalcContent()
		m.ensureCursorVisible()
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		m.recalcContent()
		m.ensureCursorVisible()
		return m, nil
	}

	// Forward other keys (pgup/pgdn/home/end) to the active viewport.
	var cmd tea.Cmd
	if m.activePane == paneJobs {
		m.jobsViewport, cmd = m.jobsViewport.Update(msg)
	} else {
		m.appliedViewport, cmd = m.appliedViewport.Update(msg)
	}
	return m, cmd
}

func (m browseModel) focusInput(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	cmd := m.input(f).Focus()
	return m, cmd
}

// input returns the text input behind f.
func (m *browseModel) input(f focus) *textinput.Model {
	switch f {
	case focusFrom:
		return &m.from
	case focusTo:
		return &m.to
	default:
		return &m.search
	}
}

func (m browseModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.input(m.focus)
	switch msg.String() {
	case "esc", "enter", "tab":
		in.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.refresh()
	return m, cmd
}

func (m browseModel) updateSortPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	picker, chosen, done := m.picker.update(msg.String())
	m.picker = picker
	if !done {
		return m, nil
	}
	m.focus = focusList
	if chosen != "" {
		m.criteria.Sort = chosen
		m.jobsCursor = 0
		m.refresh()
		m.jobsViewport.SetYOffset(0)
	}
	return m, nil
}

func (m browseModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var answer bool
	switch msg.String() {
	case "y", "Y":
		answer = true
	case "n", "N", "esc", "q":
		answer = false
	default:
		return m, nil
	}
	m.focus = focusList
	cleared, err := m.board.ClearAll(listing.ConfirmFunc(func(string) bool { return answer }))
	if cleared || err != nil {
		m.mutate(err, "cleared applied jobs")
	}
	return m, nil
}

// mutate re-derives the view after a board change and records the outcome.
func (m *browseModel) mutate(err error, format string, args ...any) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf(format, args...)
		m.statusErr = false
	}
	m.refresh()
}

// refresh derives the listing from the current controls and board state.
func (m *browseModel) refresh() {
	m.criteria.Query = m.search.Value()
	m.criteria.From = m.from.Value()
	m.criteria.To = m.to.Value()
	m.view = m.board.View(m.criteria)

	now := m.now()
	m.rows = make([]RowView, len(m.view.Jobs))
	for i, j := range m.view.Jobs {
		m.rows[i] = NewRowView(j, m.view.IsApplied(j.ID), now, m.relativeDates)
	}
	m.applied = NewAppliedListView(m.view.Applied)

	m.jobsCursor = clamp(m.jobsCursor, 0, max(len(m.rows)-1, 0))
	m.appliedCursor = clamp(m.appliedCursor, 0, max(len(m.applied.Rows)-1, 0))
	if m.ready {
		m.recalcContent()
		m.ensureCursorVisible()
	}
}

// selectedJob returns the job under the cursor in the active pane.
func (m browseModel) selectedJob() (int, bool) {
	if m.activePane == paneJobs {
		if len(m.rows) == 0 {
			return 0, false
		}
		return m.rows[m.jobsCursor].ID, true
	}
	if m.applied.Empty() {
		return 0, false
	}
	return m.applied.Rows[m.appliedCursor].ID, true
}

func (m *browseModel) moveCursor(delta int) {
	if m.activePane == paneJobs {
		m.jobsCursor = clamp(m.jobsCursor+delta, 0, max(len(m.rows)-1, 0))
	} else {
		m.appliedCursor = clamp(m.appliedCursor+delta, 0, max(len(m.applied.Rows)-1, 0))
	}
}

func (m *browseModel) ensureCursorVisible() {
	var vp *viewport.Model
	var cursor int
	if m.activePane == paneJobs {
		vp = &m.jobsViewport
		cursor = m.jobsCursor
	} else {
		vp = &m.appliedViewport
		cursor = m.appliedCursor
	}

	cursorTop := cursor * rowHeight
	cursorBottom := cursorTop + rowHeight - 1

	if cursorTop < vp.YOffset {
		vp.SetYOffset(cursorTop)
	} else if cursorBottom >= vp.YOffset+vp.Height {
		vp.SetYOffset(cursorBottom - vp.Height + 1)
	}
}

func (m *browseModel) recalcLayout() {
	// 2 border chars per pane + 1 gap between panes.
	paneWidth := max((m.width-5)/2, 20)

	// Title (1) + controls (1) + pane header (1) + borders (2) + status bar (1).
	paneHeight := max(m.height-6, 5)

	if !m.ready {
		m.jobsViewport = viewport.New(paneWidth, paneHeight)
		m.appliedViewport = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.jobsViewport.Width = paneWidth
		m.jobsViewport.Height = paneHeight
		m.appliedViewport.Width = paneWidth
		m.appliedViewport.Height = paneHeight
	}

	m.recalcContent()
}

func (m *browseModel) recalcContent() {
	width := m.jobsViewport.Width
	m.jobsViewport.SetContent(renderRows(m.rows, m.jobsCursor, m.activePane == paneJobs, width))
	m.appliedViewport.SetContent(renderAppliedList(m.applied, m.appliedCursor, m.activePane == paneApplied, width))
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.focus == focusSort {
		return m.picker.view()
	}

	title := titleStyle.Render("Job Postings") + subtitleStyle.Render("Search, filter by date, sort, and apply.")
	return title + "\n" + m.viewControls() + "\n" + m.viewPanes() + "\n" + m.viewStatus()
}

func (m browseModel) viewControls() string {
	label := func(s string, f focus) string {
		if m.focus == f {
			return activeHeaderStyle.Render(s)
		}
		return controlLabelStyle.Padding(0, 1).Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		label("Search", focusSearch), m.search.View(),
		label("Sort", focusSort), m.criteria.Sort.Label(),
		label("From", focusFrom), m.from.View(),
		label("To", focusTo), m.to.View(),
	)
}

func (m browseModel) viewPanes() string {
	paneWidth := m.jobsViewport.Width

	jobsHeader := fmt.Sprintf(" Jobs (%d)", len(m.rows))
	appliedHeader := fmt.Sprintf(" Applied Jobs (%d)", len(m.applied.Rows))

	var jobsHeaderRendered, appliedHeaderRendered string
	var jobsBorder, appliedBorder lipgloss.Style

	if m.activePane == paneJobs {
		jobsHeaderRendered = activeHeaderStyle.Render(jobsHeader)
		appliedHeaderRendered = inactiveHeaderStyle.Render(appliedHeader)
		jobsBorder = activeBorderStyle.Width(paneWidth)
		appliedBorder = inactiveBorderStyle.Width(paneWidth)
	} else {
		jobsHeaderRendered = inactiveHeaderStyle.Render(jobsHeader)
		appliedHeaderRendered = activeHeaderStyle.Render(appliedHeader)
		jobsBorder = inactiveBorderStyle.Width(paneWidth)
		appliedBorder = activeBorderStyle.Width(paneWidth)
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paneWidth+2).Render(jobsHeaderRendered),
		" ",
		lipgloss.NewStyle().Width(paneWidth+2).Render(appliedHeaderRendered),
	)
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		jobsBorder.Render(m.jobsViewport.View()),
		" ",
		appliedBorder.Render(m.appliedViewport.View()),
	)
	return headerRow + "\n" + panes
}

func (m browseModel) viewStatus() string {
	if m.focus == focusConfirm {
		return confirmStyle.Width(m.width).Render(listing.ClearAllPrompt + " (y/n)")
	}

	var text string
	switch m.focus {
	case focusSearch, focusFrom, focusTo:
		text = " type to filter  enter/esc done"
	default:
		text = " / search  f/t dates  x clear dates  s sort  a apply  u unapply  C clear all  Tab switch  q quit"
	}
	if n := len(m.view.Stale); n > 0 && m.status == "" {
		text = fmt.Sprintf(" %d applied id(s) not in catalog |", n) + text
	}
	if m.status != "" {
		status := m.status
		if m.statusErr {
			status = errorStyle.Render("⚠ " + status)
		}
		text = " " + status + "  |" + text
	}
	return statusBarStyle.Width(m.width).Render(strings.TrimRight(text, " "))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the interactive browser over board in the alternate screen.
func Run(board *listing.Board, opts Options) error {
	p := tea.NewProgram(newBrowseModel(board, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
