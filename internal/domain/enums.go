package domain

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityUrgent      Priority = "urgent"
	PriorityProblematic Priority = "problematic"
	PriorityImportant   Priority = "important"
	PriorityStandard    Priority = "standard"
)

// AllPriorities lists priorities from most to least urgent.
func AllPriorities() []Priority {
	return []Priority{PriorityUrgent, PriorityProblematic, PriorityImportant, PriorityStandard}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityProblematic, PriorityImportant, PriorityStandard:
		return true
	}
	return false
}

// Label returns the display name for p.
func (p Priority) Label() string {
	switch p {
	case PriorityUrgent:
		return "Urgent"
	case PriorityProblematic:
		return "Problematic"
	case PriorityImportant:
		return "Important"
	case PriorityStandard:
		return "Standard"
	}
	return string(p)
}

// Icon returns a single-glyph marker for p.
func (p Priority) Icon() string {
	switch p {
	case PriorityUrgent:
		return "🔥"
	case PriorityProblematic:
		return "☠"
	case PriorityImportant:
		return "⚡"
	case PriorityStandard:
		return "○"
	}
	return "?"
}

// ParsePriority accepts the stored value or the display label, ignoring case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

type Status string

const (
	StatusBacklog Status = "backlog"
	StatusTodo    Status = "todo"
	StatusBlocked Status = "blocked"
	StatusDoing   Status = "doing"
	StatusReview  Status = "review"
	StatusDone    Status = "done"
)

// AllStatuses lists statuses in board column order.
func AllStatuses() []Status {
	return []Status{StatusBacklog, StatusTodo, StatusBlocked, StatusDoing, StatusReview, StatusDone}
}

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusBlocked, StatusDoing, StatusReview, StatusDone:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusTodo:
		return "To Do"
	case StatusBlocked:
		return "Blocked"
	case StatusDoing:
		return "Doing"
	case StatusReview:
		return "In Review"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Next returns the status one column to the right, or s itself when s is
// the last column.
func (s Status) Next() Status {
	all := AllStatuses()
	for i, v := range all {
		if v == s && i+1 < len(all) {
			return all[i+1]
		}
	}
	return s
}

// Prev returns the status one column to the left, or s itself when s is
// the first column.
func (s Status) Prev() Status {
	all := AllStatuses()
	for i, v := range all {
		if v == s && i > 0 {
			return all[i-1]
		}
	}
	return s
}

// ParseStatus accepts the stored value or the display label, ignoring case
// and separators ("To Do", "to-do" and "todo" are equivalent).
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	if norm == "inreview" {
		norm = string(StatusReview)
	}
	st := Status(norm)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

func AllPeriods() []Period {
	return []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}
}

func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

func (p Period) Label() string {
	switch p {
	case PeriodMorning:
		return "Morning"
	case PeriodAfternoon:
		return "Afternoon"
	case PeriodEvening:
		return "Evening"
	}
	return string(p)
}

func (p Period) Icon() string {
	switch p {
	case PeriodMorning:
		return "☀"
	case PeriodAfternoon:
		return "⛅"
	case PeriodEvening:
		return "☾"
	}
	return "?"
}

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return p, nil
}

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectPaused ProjectStatus = "paused"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPaused:
		return true
	}
	return false
}

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectActive:
		return "Active"
	case ProjectPaused:
		return "Paused"
	}
	return string(s)
}

// Toggled flips active and paused.
func (s ProjectStatus) Toggled() ProjectStatus {
	if s == ProjectActive {
		return ProjectPaused
	}
	return ProjectActive
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	st := ProjectStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectStatus, s)
	}
	return st, nil
}
