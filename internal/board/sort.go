package board

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/quadro/internal/domain"
)

// RankOfPriority returns a sort rank for p (lower = more urgent).
func RankOfPriority(p domain.Priority) (int, error) {
	switch p {
	case domain.PriorityUrgent:
		return 0, nil
	case domain.PriorityProblematic:
		return 1, nil
	case domain.PriorityImportant:
		return 2, nil
	case domain.PriorityStandard:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, p)
}

func mustRank(p domain.Priority) int {
	r, err := RankOfPriority(p)
	if err != nil {
		panic(err)
	}
	return r
}

// CompareTasks orders tasks by the canonical rules:
// 1. Deadline: earliest calendar day first (time of day ignored)
// 2. Priority: urgent > problematic > important > standard
//
// Ties return 0; SortTasks keeps input order for them. CompareTasks panics
// on an invalid priority, so unvalidated input must go through SortTasks.
func CompareTasks(a, b domain.Task) int {
	if c := domain.CompareDays(a.Deadline, b.Deadline); c != 0 {
		return c
	}
	ra, rb := mustRank(a.Priority), mustRank(b.Priority)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return 0
}

// SortTasks returns a new slice holding tasks in canonical order. The sort is
// stable, so tasks that compare equal keep their relative input order.
func SortTasks(tasks []domain.Task) ([]domain.Task, error) {
	if err := validateAll(tasks); err != nil {
		return nil, err
	}
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []domain.Task{}
	}
	slices.SortStableFunc(sorted, CompareTasks)
	return sorted, nil
}

func validateAll(tasks []domain.Task) error {
	for i := range tasks {
		if err := tasks[i].ValidateEnums(); err != nil {
			return err
		}
	}
	return nil
}
