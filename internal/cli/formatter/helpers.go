package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// DaysBetween counts calendar days from now to t in now's location.
func DaysBetween(t, now time.Time) int {
	from := domain.StartOfDay(now)
	to := domain.StartOfDay(t.In(now.Location()))
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// RelativeDateFrom returns a human-friendly calendar-day distance from now.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := DaysBetween(t, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DeadlineStyled renders a deadline as "Mar 10 (Today)" colored by urgency.
// Done tasks are always dimmed.
func DeadlineStyled(t domain.Task, now time.Time) string {
	if t.Deadline.IsZero() {
		return Dim("--")
	}
	text := fmt.Sprintf("%s (%s)", t.Deadline.Format("Jan 2"), RelativeDateFrom(t.Deadline, now))
	if t.IsDone() {
		return StyleDim.Render(text)
	}
	days := DaysBetween(t.Deadline, now)
	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 1:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID.
func TruncID(id string) string {
	return domain.ShortID(id)
}

// Truncate shortens s to width visible cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
