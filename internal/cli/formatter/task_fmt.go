package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/domain"
)

// FormatTaskList renders tasks as a table with project swatches.
func FormatTaskList(title string, views []app.TaskView, now time.Time) string {
	if len(views) == 0 {
		return RenderBox(title, Dim("No tasks"))
	}
	headers := []string{"ID", "TITLE", "PROJECT", "PRIORITY", "STATUS", "DEADLINE", "PERIOD"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		name := Bold(Truncate(v.Task.Title, 40))
		if v.Task.IsArchived {
			name += " " + Dim("[archived]")
		}
		rows = append(rows, []string{
			Dim(TruncID(v.Task.ID)),
			name,
			ProjectLabel(v.ProjectName, v.ProjectColor),
			PriorityBadge(v.Task.Priority),
			StatusPill(v.Task.Status),
			DeadlineStyled(v.Task, now),
			PeriodBadge(v.Task.Period),
		})
	}
	return RenderBox(title, strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatTaskDetail renders every field of one task.
func FormatTaskDetail(v app.TaskView, now time.Time) string {
	t := v.Task
	var b strings.Builder
	b.WriteString(Bold(t.Title) + "\n")
	if t.IsArchived {
		b.WriteString(StyleYellow.Render("archived") + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-9s", label)), value)
	}
	field("ID", t.ID)
	field("PROJECT", ProjectLabel(v.ProjectName, v.ProjectColor))
	field("STATUS", StatusPill(t.Status))
	field("PRIORITY", PriorityBadge(t.Priority))
	field("DEADLINE", DeadlineStyled(t, now))
	field("PERIOD", PeriodBadge(t.Period))
	if !t.UpdatedAt.IsZero() {
		field("UPDATED", Dim(t.UpdatedAt.In(now.Location()).Format("Jan 2, 2006 15:04")))
	}
	if strings.TrimSpace(t.Description) != "" {
		b.WriteString("\n" + StyleFg.Render(t.Description) + "\n")
	}
	return RenderBox("Task", strings.TrimRight(b.String(), "\n"))
}

// FormatTaskChanged renders a one-line confirmation after a mutation.
func FormatTaskChanged(verb string, t *domain.Task) string {
	return fmt.Sprintf("%s %s %s  %s", StyleGreen.Render("✔"), verb, Bold(t.Title), Dim(TruncID(t.ID)))
}
