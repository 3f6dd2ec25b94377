package board

import (
	"fmt"

	"github.com/alexanderramin/quadro/internal/domain"
)

// GroupKey selects the enum field GroupBy partitions on.
type GroupKey int

const (
	KeyStatus GroupKey = iota
	KeyPeriod
	KeyPriority
)

func (k GroupKey) String() string {
	switch k {
	case KeyStatus:
		return "status"
	case KeyPeriod:
		return "period"
	case KeyPriority:
		return "priority"
	}
	return fmt.Sprintf("GroupKey(%d)", int(k))
}

// Groups maps each stored enum value to its tasks in canonical order.
type Groups map[string][]domain.Task

// GroupBy sorts non-archived tasks and partitions them on key. Every value
// of the enum is present in the result; unused values map to an empty
// slice.
func GroupBy(tasks []domain.Task, key GroupKey) (Groups, error) {
	switch key {
	case KeyStatus:
		g, err := groupInto(tasks, stringsOf(domain.AllStatuses()), func(t domain.Task) string { return string(t.Status) })
		return Groups(g), err
	case KeyPeriod:
		g, err := groupInto(tasks, stringsOf(domain.AllPeriods()), func(t domain.Task) string { return string(t.Period) })
		return Groups(g), err
	case KeyPriority:
		g, err := groupInto(tasks, stringsOf(domain.AllPriorities()), func(t domain.Task) string { return string(t.Priority) })
		return Groups(g), err
	}
	return nil, fmt.Errorf("unknown group key %s", key)
}

// GroupByStatus is GroupBy(tasks, KeyStatus) with typed keys.
func GroupByStatus(tasks []domain.Task) (map[domain.Status][]domain.Task, error) {
	return groupInto(tasks, domain.AllStatuses(), func(t domain.Task) domain.Status { return t.Status })
}

// GroupByPeriod is GroupBy(tasks, KeyPeriod) with typed keys.
func GroupByPeriod(tasks []domain.Task) (map[domain.Period][]domain.Task, error) {
	return groupInto(tasks, domain.AllPeriods(), func(t domain.Task) domain.Period { return t.Period })
}

// GroupByPriority is GroupBy(tasks, KeyPriority) with typed keys.
func GroupByPriority(tasks []domain.Task) (map[domain.Priority][]domain.Task, error) {
	return groupInto(tasks, domain.AllPriorities(), func(t domain.Task) domain.Priority { return t.Priority })
}

// GroupByProject partitions tasks by project ID. Every ID in projectIDs is
// present in the result; tasks referencing other projects get their own key.
func GroupByProject(tasks []domain.Task, projectIDs []string) (map[string][]domain.Task, error) {
	return groupInto(tasks, projectIDs, func(t domain.Task) string { return t.ProjectID })
}

func groupInto[K comparable](tasks []domain.Task, keys []K, keyOf func(domain.Task) K) (map[K][]domain.Task, error) {
	sorted, err := SortTasks(tasks)
	if err != nil {
		return nil, err
	}
	groups := make(map[K][]domain.Task, len(keys))
	for _, k := range keys {
		groups[k] = []domain.Task{}
	}
	for _, t := range sorted {
		if t.IsArchived {
			continue
		}
		k := keyOf(t)
		groups[k] = append(groups[k], t)
	}
	return groups, nil
}

func stringsOf[E ~string](vals []E) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
