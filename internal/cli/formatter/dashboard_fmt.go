package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/domain"
)

// FormatDashboard renders the overdue, today-by-period and tomorrow sections.
func FormatDashboard(resp *app.DashboardResponse) string {
	now := resp.GeneratedAt
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", greetingFor(now.Hour()), Bold(resp.Greeting))
	b.WriteString(Dim(now.Format("Monday, January 2")) + "\n\n")

	b.WriteString(sectionHeader("Overdue", len(resp.Overdue), StyleRed.Render) + "\n")
	writeDashboardLines(&b, resp.Overdue, resp, true)
	b.WriteString("\n")

	b.WriteString(sectionHeader("Today", resp.TodayCount(), StyleHeader.Render) + "\n")
	for _, period := range domain.AllPeriods() {
		views := resp.Today[period]
		fmt.Fprintf(&b, "  %s %s\n", PeriodBadge(period), Dim(fmt.Sprintf("(%d)", len(views))))
		writeDashboardLines(&b, views, resp, false)
	}
	b.WriteString("\n")

	b.WriteString(sectionHeader("Tomorrow", len(resp.Tomorrow), StyleBlue.Render) + "\n")
	writeDashboardLines(&b, resp.Tomorrow, resp, false)

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}

func sectionHeader(title string, n int, render func(...string) string) string {
	return render(strings.ToUpper(title)) + " " + Dim(fmt.Sprintf("%d", n))
}

func writeDashboardLines(b *strings.Builder, views []app.TaskView, resp *app.DashboardResponse, withDate bool) {
	if len(views) == 0 {
		b.WriteString("    " + Dim("nothing here") + "\n")
		return
	}
	for _, v := range views {
		title := v.Task.Title
		if v.Task.IsDone() {
			title = StyleDim.Strikethrough(true).Render(title)
		} else {
			title = StyleFg.Render(title)
		}
		line := fmt.Sprintf("    %s %s  %s", PriorityStyle(v.Task.Priority).Render(v.Task.Priority.Icon()), title, ProjectLabel(v.ProjectName, v.ProjectColor))
		if withDate {
			line += "  " + DeadlineStyled(v.Task, resp.GeneratedAt)
		}
		b.WriteString(line + "\n")
	}
}

func greetingFor(hour int) string {
	switch {
	case hour < 12:
		return "Good morning,"
	case hour < 18:
		return "Good afternoon,"
	default:
		return "Good evening,"
	}
}
