package board

import (
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
)

// Dashboard is the day view: what slipped, what is on today split by
// period, and what comes tomorrow. Every list is in canonical order.
type Dashboard struct {
	Overdue  []domain.Task
	Today    map[domain.Period][]domain.Task
	Tomorrow []domain.Task
}

// TodayCount returns the number of tasks across all periods of today.
func (d Dashboard) TodayCount() int {
	n := 0
	for _, tasks := range d.Today {
		n += len(tasks)
	}
	return n
}

func BuildDashboard(tasks []domain.Task, now time.Time) (Dashboard, error) {
	b, err := ClassifyByTime(tasks, now)
	if err != nil {
		return Dashboard{}, err
	}
	overdue, err := SortTasks(b.Overdue)
	if err != nil {
		return Dashboard{}, err
	}
	today, err := GroupByPeriod(b.Today)
	if err != nil {
		return Dashboard{}, err
	}
	tomorrow, err := SortTasks(b.Tomorrow)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Overdue: overdue, Today: today, Tomorrow: tomorrow}, nil
}
