package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/domain"
)

const projectBarWidth = 16

// FormatProjects renders the active and paused project overviews.
func FormatProjects(resp *app.ProjectsResponse) string {
	if len(resp.Active)+len(resp.Paused) == 0 {
		return RenderBox("Projects", Dim("No projects yet. Create one with 'quadro project add'."))
	}
	var b strings.Builder
	b.WriteString(projectSection("Active", resp.Active))
	if len(resp.Paused) > 0 {
		b.WriteString("\n" + projectSection("Paused", resp.Paused))
	}
	return RenderBox("Projects", strings.TrimRight(b.String(), "\n"))
}

func projectSection(title string, overviews []app.ProjectOverview) string {
	if len(overviews) == 0 {
		return Header(title) + "\n" + Dim("none") + "\n"
	}
	headers := []string{"ID", "NAME", "STATUS", "PROGRESS", "TASKS"}
	rows := make([][]string, 0, len(overviews))
	for _, o := range overviews {
		rows = append(rows, []string{
			Dim(o.Project.DisplayID()),
			ProjectLabel(o.Project.Name, o.Project.Color),
			ProjectStatusPill(o.Project.Status),
			RenderProgress(o.Progress.Percent/100, projectBarWidth),
			fmt.Sprintf("%d/%d", o.Progress.Done, o.Progress.Total),
		})
	}
	return Header(title) + "\n" + RenderTable(headers, rows)
}

// FormatProjectDetail renders one project with its progress and sorted tasks.
func FormatProjectDetail(resp *app.ProjectDetailResponse, now time.Time) string {
	p := resp.Project
	var b strings.Builder
	b.WriteString(ProjectLabel(Bold(p.Name), p.Color) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("ID      "), p.ID)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("STATUS  "), ProjectStatusPill(p.Status))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("COLOR   "), Swatch(p.Color)+" "+p.Color)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("PROGRESS"), ProgressSummary(resp.Progress, projectBarWidth))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("OPEN    "), openByPriority(resp.OpenByPriority))
	return RenderBox("Project", strings.TrimRight(b.String(), "\n")) + "\n" +
		FormatTaskList("Tasks", resp.Tasks, now)
}

// FormatProjectChanged renders a one-line confirmation after a mutation.
func FormatProjectChanged(verb string, p *domain.Project) string {
	return fmt.Sprintf("%s %s %s  %s", StyleGreen.Render("✔"), verb, ProjectLabel(Bold(p.Name), p.Color), Dim(p.DisplayID()))
}

func openByPriority(counts map[domain.Priority]int) string {
	var parts []string
	for _, p := range domain.AllPriorities() {
		if n := counts[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", PriorityBadge(p), n))
		}
	}
	if len(parts) == 0 {
		return Dim("nothing open")
	}
	return strings.Join(parts, "  ")
}
