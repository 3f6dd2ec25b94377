package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/contract"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const minBoardColumnWidth = 18

type boardLoadedMsg struct {
	resp *contract.KanbanResponse
	err  error
}

type taskMovedMsg struct {
	task *domain.Task
	err  error
}

// boardModel is the interactive kanban: one column per status, a cursor
// on one card, and keys that move the card between columns.
type boardModel struct {
	ctx       context.Context
	app       *App
	projectID string

	keys boardKeyMap
	help help.Model

	columns []contract.KanbanColumn
	col     int
	row     int
	focusID string

	width   int
	loading bool
	status  string
	err     error
}

func newBoardModel(ctx context.Context, app *App, projectID string) *boardModel {
	return &boardModel{
		ctx:       ctx,
		app:       app,
		projectID: projectID,
		keys:      defaultBoardKeys(),
		help:      help.New(),
		loading:   true,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	ctx, board, projectID := m.ctx, m.app.Board, m.projectID
	return func() tea.Msg {
		resp, err := board.Kanban(ctx, contract.KanbanRequest{ProjectID: projectID})
		return boardLoadedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) move(t domain.Task, to domain.Status) tea.Cmd {
	ctx, tasks := m.ctx, m.app.Tasks
	return func() tea.Msg {
		updated, err := tasks.SetStatus(ctx, t.ID, to)
		return taskMovedMsg{task: updated, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.columns = msg.resp.Columns
		m.restoreFocus()
		return m, nil

	case taskMovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.focusID = msg.task.ID
		m.status = fmt.Sprintf("Moved %q to %s", msg.task.Title, msg.task.Status.Label())
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.load()
	case key.Matches(msg, m.keys.Left):
		m.focusColumn(m.col - 1)
	case key.Matches(msg, m.keys.Right):
		m.focusColumn(m.col + 1)
	case key.Matches(msg, m.keys.Up):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Down):
		if n := m.columnLen(m.col); m.row < n-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.MovePrev), key.Matches(msg, m.keys.MoveNext):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		to := t.Status.Next()
		if key.Matches(msg, m.keys.MovePrev) {
			to = t.Status.Prev()
		}
		if to == t.Status {
			return m, nil
		}
		return m, m.move(t, to)
	}
	return m, nil
}

func (m *boardModel) focusColumn(col int) {
	if len(m.columns) == 0 {
		return
	}
	m.col = min(max(col, 0), len(m.columns)-1)
	m.row = min(m.row, max(m.columnLen(m.col)-1, 0))
}

// restoreFocus puts the cursor back on focusID after a reload, or clamps
// it to the new column sizes.
func (m *boardModel) restoreFocus() {
	if m.focusID != "" {
		for ci, col := range m.columns {
			for ri, v := range col.Tasks {
				if v.Task.ID == m.focusID {
					m.col, m.row, m.focusID = ci, ri, ""
					return
				}
			}
		}
		m.focusID = ""
	}
	m.focusColumn(m.col)
}

func (m *boardModel) columnLen(col int) int {
	if col < 0 || col >= len(m.columns) {
		return 0
	}
	return len(m.columns[col].Tasks)
}

func (m *boardModel) selected() (domain.Task, bool) {
	if m.row >= m.columnLen(m.col) {
		return domain.Task{}, false
	}
	return m.columns[m.col].Tasks[m.row].Task, true
}

func (m *boardModel) View() string {
	if m.loading {
		return formatter.Dim("Loading board…")
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("QUADRO BOARD") + "\n\n")

	colWidth := minBoardColumnWidth
	if n := len(m.columns); n > 0 && m.width > 0 {
		colWidth = max(m.width/n-2, minBoardColumnWidth)
	}
	cols := make([]string, len(m.columns))
	for i, col := range m.columns {
		cols[i] = m.renderColumn(i, col, colWidth)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *boardModel) renderColumn(i int, col contract.KanbanColumn, width int) string {
	focused := i == m.col
	inner := width - 2

	var b strings.Builder
	b.WriteString(formatter.StatusPill(col.Status) + " " + formatter.Dim(fmt.Sprintf("(%d)", len(col.Tasks))))
	if len(col.Tasks) == 0 {
		b.WriteString("\n\n" + formatter.Dim("empty"))
	}
	for ri, v := range col.Tasks {
		card := formatter.KanbanCard(v, inner-2)
		marker := "  "
		if focused && ri == m.row {
			marker = formatter.StyleHeader.Render("▌ ")
		}
		b.WriteString("\n\n" + prefixLines(card, marker))
	}

	border := formatter.ColorDim
	if focused {
		border = formatter.ColorHeader
	}
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(b.String())
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
