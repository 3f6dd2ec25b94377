package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errAborted is returned when the user cancels a form or confirmation.
var errAborted = errors.New("aborted")

// quadroHuhTheme returns a huh theme that matches the formatter palette.
func quadroHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskDraft collects task fields from flags and the add wizard.
type taskDraft struct {
	Title       string
	ProjectID   string
	Deadline    string
	Description string
	Period      domain.Period
	Priority    domain.Priority
	Status      domain.Status
}

// build validates the draft and converts it to a task.
func (d taskDraft) build(loc *time.Location) (*domain.Task, error) {
	if err := domain.ValidateTitle(d.Title); err != nil {
		return nil, err
	}
	deadline, err := domain.ParseDate(d.Deadline, loc)
	if err != nil {
		return nil, err
	}
	return &domain.Task{
		ProjectID:   d.ProjectID,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Deadline:    deadline,
		Period:      d.Period,
		Priority:    d.Priority,
		Status:      d.Status,
	}, nil
}

func taskForm(projects []*domain.Project, d *taskDraft, loc *time.Location) *huh.Form {
	projectOptions := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		projectOptions = append(projectOptions, huh.NewOption(p.Name, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&d.Title).
				Validate(domain.ValidateTitle),
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOptions...).
				Value(&d.ProjectID),
			dateInput("Deadline (YYYY-MM-DD)", &d.Deadline, loc),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Period]().
				Title("Period").
				Options(enumOptions(domain.AllPeriods(), domain.Period.Label)...).
				Value(&d.Period),
			huh.NewSelect[domain.Priority]().
				Title("Priority").
				Options(enumOptions(domain.AllPriorities(), domain.Priority.Label)...).
				Value(&d.Priority),
			huh.NewText().
				Title("Description").
				CharLimit(domain.MaxDescriptionLen).
				Value(&d.Description),
		),
	).WithTheme(quadroHuhTheme()).WithShowHelp(false)
}

// projectDraft collects project fields from flags and the add wizard.
type projectDraft struct {
	Name  string
	Color string
}

func projectForm(d *projectDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&d.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Color").
				Description("#RRGGBB or one of " + strings.Join(domain.PredefinedColors(), ", ")).
				Placeholder("blue").
				Value(&d.Color).
				Validate(validateColor),
		),
	).WithTheme(quadroHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question, defaulting to no.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(quadroHuhTheme()).WithShowHelp(false)
}

// confirm returns nil when the action may proceed. Non-interactive runs
// require the caller to pass --yes.
func confirm(app *App, title string, yes bool) error {
	if yes {
		return nil
	}
	if !app.IsInteractive {
		return fmt.Errorf("%s: pass --yes to confirm", title)
	}
	ok := false
	if err := runForm(confirmForm(title+"?", &ok)); err != nil {
		return err
	}
	if !ok {
		return errAborted
	}
	return nil
}

// runForm runs a form and maps the user's abort to errAborted.
func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAborted
		}
		return err
	}
	return nil
}

func dateInput(title string, value *string, loc *time.Location) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(time.Now().In(loc).Format(domain.DateLayout)).
		Value(value).
		Validate(func(s string) error {
			_, err := domain.ParseDate(s, loc)
			return err
		})
}

func enumOptions[T ~string](values []T, label func(T) string) []huh.Option[T] {
	opts := make([]huh.Option[T], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(label(v), v)
	}
	return opts
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateColor(s string) error {
	_, err := domain.ResolveColor(s)
	return err
}
