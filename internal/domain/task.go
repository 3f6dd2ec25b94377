package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 1000
)

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Deadline    time.Time
	Period      Period
	Priority    Priority
	Status      Status
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateEnums checks the fields the board engine depends on: deadline,
// priority, status and period.
func (t *Task) ValidateEnums() error {
	if t.Deadline.IsZero() {
		return fmt.Errorf("task %s: %w", t.ID, ErrMissingDeadline)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidPriority, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidStatus, t.Status)
	}
	if !t.Period.Valid() {
		return fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidPeriod, t.Period)
	}
	return nil
}

// Validate checks every user-editable field.
func (t *Task) Validate() error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidDescription, MaxDescriptionLen)
	}
	if t.ProjectID == "" {
		return ErrMissingProject
	}
	return t.ValidateEnums()
}

// ValidateTitle requires a non-blank title of at most MaxTitleLen characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTitle)
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidTitle, MaxTitleLen)
	}
	return nil
}

// IsDone reports whether the task has reached the final column.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
