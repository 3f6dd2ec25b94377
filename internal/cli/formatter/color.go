package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled switches every style between true color and plain text.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// PriorityStyle returns the style for a priority, hottest first.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed
	case domain.PriorityProblematic:
		return StyleOrange
	case domain.PriorityImportant:
		return StyleYellow
	case domain.PriorityStandard:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityBadge renders the priority icon and label, e.g. "🔥 Urgent".
func PriorityBadge(p domain.Priority) string {
	return PriorityStyle(p).Render(p.Icon() + " " + p.Label())
}

// StatusPill returns a colored indicator for a task status.
func StatusPill(s domain.Status) string {
	switch s {
	case domain.StatusBacklog:
		return StyleDim.Render("◌ " + s.Label())
	case domain.StatusTodo:
		return StyleBlue.Render("○ " + s.Label())
	case domain.StatusBlocked:
		return StyleRed.Render("⊘ " + s.Label())
	case domain.StatusDoing:
		return StyleGreen.Render("● " + s.Label())
	case domain.StatusReview:
		return StylePurple.Render("◐ " + s.Label())
	case domain.StatusDone:
		return StyleDim.Render("✔ " + s.Label())
	default:
		return StyleDim.Render(string(s))
	}
}

// ProjectStatusPill returns a colored indicator for project status.
func ProjectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActive:
		return StyleGreen.Render("● " + s.Label())
	case domain.ProjectPaused:
		return StyleYellow.Render("○ " + s.Label())
	default:
		return StyleDim.Render(string(s))
	}
}

// PeriodBadge renders the period icon and label.
func PeriodBadge(p domain.Period) string {
	return StyleFg.Render(p.Icon() + " " + p.Label())
}

// Swatch renders a colored dot in the project's own color.
func Swatch(hex string) string {
	if hex == "" {
		return StyleDim.Render("●")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// ProjectLabel renders a project swatch followed by its name.
func ProjectLabel(name, hex string) string {
	if name == "" {
		return Dim("--")
	}
	return Swatch(hex) + " " + name
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
