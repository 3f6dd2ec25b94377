package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/charmbracelet/lipgloss"
)

const kanbanColumnWidth = 24

// FormatKanban renders one bordered column per status, side by side.
func FormatKanban(resp *app.KanbanResponse) string {
	cols := make([]string, 0, len(resp.Columns))
	for _, col := range resp.Columns {
		cols = append(cols, renderKanbanColumn(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderKanbanColumn(col app.KanbanColumn) string {
	var b strings.Builder
	b.WriteString(StatusPill(col.Status) + " " + Dim(fmt.Sprintf("(%d)", len(col.Tasks))) + "\n")
	b.WriteString(StyleDim.Render(strings.Repeat("─", kanbanColumnWidth-2)))
	if len(col.Tasks) == 0 {
		b.WriteString("\n" + Dim("empty"))
	}
	for _, v := range col.Tasks {
		b.WriteString("\n" + KanbanCard(v, kanbanColumnWidth-2))
	}
	return lipgloss.NewStyle().
		Width(kanbanColumnWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Render(b.String())
}

// KanbanCard renders a compact two-line card for a task.
func KanbanCard(v app.TaskView, width int) string {
	icon := PriorityStyle(v.Task.Priority).Render(v.Task.Priority.Icon())
	title := StyleFg.Render(Truncate(v.Task.Title, width-2))
	meta := Swatch(v.ProjectColor) + " " + Dim(Truncate(v.ProjectName, width-14)) + " " + Dim(v.Task.Deadline.Format("Jan 2"))
	return icon + " " + title + "\n  " + meta
}
