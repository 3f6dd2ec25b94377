package testutil

import (
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/google/uuid"
)

// Date parses a YYYY-MM-DD fixture date at local midnight and panics on a typo.
func Date(s string) time.Time {
	d, err := domain.ParseDate(s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithColor(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = c
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		Color:     domain.DefaultProjectColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithStatus(s domain.Status) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPeriod(p domain.Period) TaskOption {
	return func(t *domain.Task) {
		t.Period = p
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func WithArchived() TaskOption {
	return func(t *domain.Task) {
		t.IsArchived = true
	}
}

// NewTestTask builds a backlog task due today in the morning with standard
// priority.
func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Deadline:  domain.StartOfDay(time.Now()),
		Period:    domain.PeriodMorning,
		Priority:  domain.PriorityStandard,
		Status:    domain.StatusBacklog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
