package board

import (
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
)

// Buckets holds the temporal views of a task set. The buckets overlap: a
// task in progress with a past deadline is both overdue and due today.
type Buckets struct {
	Overdue  []domain.Task
	Today    []domain.Task
	Tomorrow []domain.Task
}

// ClassifyByTime sorts non-archived tasks into the overdue, today and
// tomorrow buckets relative to now. Each bucket keeps input order; apply
// SortTasks for display order.
//
// now is reduced to its calendar day, so any instant within a day yields
// the same result. Tasks in progress always appear under today regardless
// of deadline. Done tasks are never overdue or due tomorrow.
func ClassifyByTime(tasks []domain.Task, now time.Time) (Buckets, error) {
	if err := validateAll(tasks); err != nil {
		return Buckets{}, err
	}

	today := domain.StartOfDay(now)
	tomorrow := domain.AddDays(today, 1)

	b := Buckets{
		Overdue:  []domain.Task{},
		Today:    []domain.Task{},
		Tomorrow: []domain.Task{},
	}
	for _, t := range tasks {
		if t.IsArchived {
			continue
		}
		day := domain.CompareDays(t.Deadline, today)
		done := t.Status == domain.StatusDone

		if day < 0 && !done {
			b.Overdue = append(b.Overdue, t)
		}
		if day == 0 || t.Status == domain.StatusDoing {
			b.Today = append(b.Today, t)
		}
		if domain.SameDay(t.Deadline, tomorrow) && !done {
			b.Tomorrow = append(b.Tomorrow, t)
		}
	}
	return b, nil
}
