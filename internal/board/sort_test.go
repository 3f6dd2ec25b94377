package board

import (
	"testing"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOfPriority_Total(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range domain.AllPriorities() {
		r, err := RankOfPriority(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, 0)
		assert.LessOrEqual(t, r, 3)
		seen[r] = true
	}
	assert.Len(t, seen, 4, "ranks must be distinct")

	r, _ := RankOfPriority(domain.PriorityUrgent)
	assert.Equal(t, 0, r)
	r, _ = RankOfPriority(domain.PriorityStandard)
	assert.Equal(t, 3, r)
}

func TestRankOfPriority_Invalid(t *testing.T) {
	_, err := RankOfPriority("high")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestCompareTasks(t *testing.T) {
	early := mkTask(t, "a", "2024-01-01", withPriority(domain.PriorityStandard))
	late := mkTask(t, "b", "2024-01-05", withPriority(domain.PriorityUrgent))
	urgent := mkTask(t, "c", "2024-01-01", withPriority(domain.PriorityUrgent))

	assert.Equal(t, -1, CompareTasks(early, late), "deadline dominates priority")
	assert.Equal(t, 1, CompareTasks(late, early))
	assert.Equal(t, -1, CompareTasks(urgent, early), "same day: urgent first")
	assert.Equal(t, 0, CompareTasks(early, early))
}

func TestCompareTasks_IgnoresTimeOfDay(t *testing.T) {
	a := mkTask(t, "a", "2024-01-01", withPriority(domain.PriorityStandard))
	b := mkTask(t, "b", "2024-01-01", withPriority(domain.PriorityUrgent))
	a.Deadline = a.Deadline.Add(18 * time.Hour)

	assert.Equal(t, 1, CompareTasks(a, b), "a later time on the same day must not beat priority")
}

func TestCompareTasks_PanicsOnInvalidPriority(t *testing.T) {
	a := mkTask(t, "a", "2024-01-01")
	b := mkTask(t, "b", "2024-01-01", withPriority("nope"))
	assert.Panics(t, func() { CompareTasks(a, b) })
}

func TestSortTasks_Scenario(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "task1", "2024-01-05", withPriority(domain.PriorityStandard)),
		mkTask(t, "task2", "2024-01-01", withPriority(domain.PriorityUrgent)),
		mkTask(t, "task3", "2024-01-01", withPriority(domain.PriorityStandard)),
	}

	sorted, err := SortTasks(tasks)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"task2", "task3", "task1"}, ids(sorted)); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "task1", tasks[0].ID, "input must not be mutated")
}

func TestSortTasks_Stable(t *testing.T) {
	var tasks []domain.Task
	for _, id := range []string{"e", "b", "d", "a", "c"} {
		tasks = append(tasks, mkTask(t, id, "2024-02-02", withPriority(domain.PriorityImportant)))
	}

	sorted, err := SortTasks(tasks)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "b", "d", "a", "c"}, ids(sorted))
}

func TestSortTasks_Idempotent(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "1", "2024-03-02", withPriority(domain.PriorityImportant)),
		mkTask(t, "2", "2024-03-01", withPriority(domain.PriorityStandard)),
		mkTask(t, "3", "2024-03-02", withPriority(domain.PriorityUrgent)),
		mkTask(t, "4", "2024-03-01", withPriority(domain.PriorityStandard)),
		mkTask(t, "5", "2024-03-01", withPriority(domain.PriorityProblematic)),
	}

	once, err := SortTasks(tasks)
	require.NoError(t, err)
	twice, err := SortTasks(once)
	require.NoError(t, err)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second sort changed order (-once +twice):\n%s", diff)
	}
	assert.Equal(t, []string{"5", "2", "4", "3", "1"}, ids(once))
}

func TestSortTasks_Empty(t *testing.T) {
	sorted, err := SortTasks(nil)
	require.NoError(t, err)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestSortTasks_FailsFast(t *testing.T) {
	missing := mkTask(t, "m", "2024-01-01")
	missing.Deadline = time.Time{}
	_, err := SortTasks([]domain.Task{missing})
	assert.ErrorIs(t, err, domain.ErrMissingDeadline)

	bad := mkTask(t, "b", "2024-01-01", withStatus("wip"))
	_, err = SortTasks([]domain.Task{bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	badPeriod := mkTask(t, "p", "2024-01-01", withPeriod("night"))
	_, err = SortTasks([]domain.Task{badPeriod})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
