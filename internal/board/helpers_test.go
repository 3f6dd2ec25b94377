package board

import (
	"testing"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
)

type taskOpt func(*domain.Task)

func withPriority(p domain.Priority) taskOpt { return func(t *domain.Task) { t.Priority = p } }
func withStatus(s domain.Status) taskOpt     { return func(t *domain.Task) { t.Status = s } }
func withPeriod(p domain.Period) taskOpt     { return func(t *domain.Task) { t.Period = p } }
func withProject(id string) taskOpt          { return func(t *domain.Task) { t.ProjectID = id } }
func archived() taskOpt                      { return func(t *domain.Task) { t.IsArchived = true } }

func mkTask(t *testing.T, id, deadline string, opts ...taskOpt) domain.Task {
	t.Helper()
	d, err := domain.ParseDate(deadline, time.Local)
	if err != nil {
		t.Fatalf("bad deadline %q: %v", deadline, err)
	}
	tk := domain.Task{
		ID:        id,
		ProjectID: "p1",
		Title:     id,
		Deadline:  d,
		Period:    domain.PeriodMorning,
		Priority:  domain.PriorityStandard,
		Status:    domain.StatusTodo,
	}
	for _, o := range opts {
		o(&tk)
	}
	return tk
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return v
}
