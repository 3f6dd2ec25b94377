package board

import (
	"fmt"

	"github.com/alexanderramin/quadro/internal/domain"
)

// Predicate reports whether a task belongs in a filtered view.
type Predicate func(domain.Task) bool

func ByProject(projectID string) Predicate {
	return func(t domain.Task) bool { return t.ProjectID == projectID }
}

func ByStatus(s domain.Status) Predicate {
	return func(t domain.Task) bool { return t.Status == s }
}

func ByPriority(p domain.Priority) Predicate {
	return func(t domain.Task) bool { return t.Priority == p }
}

func NotArchived(t domain.Task) bool {
	return !t.IsArchived
}

// Match returns the tasks satisfying every predicate, in input order. With
// no predicates every task matches.
func Match(tasks []domain.Task, preds ...Predicate) []domain.Task {
	out := []domain.Task{}
next:
	for _, t := range tasks {
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}

// Filter describes the optional criteria of a listing. A zero field matches
// every task.
type Filter struct {
	ProjectID       string
	Status          domain.Status
	Priority        domain.Priority
	IncludeArchived bool
}

// Validate rejects enum values outside the closed sets.
func (f Filter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("filter: %w: %q", domain.ErrInvalidStatus, f.Status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return fmt.Errorf("filter: %w: %q", domain.ErrInvalidPriority, f.Priority)
	}
	return nil
}

// Predicates returns one predicate per active criterion.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate
	if !f.IncludeArchived {
		preds = append(preds, NotArchived)
	}
	if f.ProjectID != "" {
		preds = append(preds, ByProject(f.ProjectID))
	}
	if f.Status != "" {
		preds = append(preds, ByStatus(f.Status))
	}
	if f.Priority != "" {
		preds = append(preds, ByPriority(f.Priority))
	}
	return preds
}

// FilterTasks applies f to tasks, keeping input order. Sorting is a
// separate step.
func FilterTasks(tasks []domain.Task, f Filter) ([]domain.Task, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return Match(tasks, f.Predicates()...), nil
}
