package board

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyByTime_OverdueScenario(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "task1", "2024-01-01", withStatus(domain.StatusTodo)),
		mkTask(t, "task2", "2024-01-05", withStatus(domain.StatusDone)),
	}

	b, err := ClassifyByTime(tasks, at(t, "2024-01-10T00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"task1"}, ids(b.Overdue))
	assert.Empty(t, b.Today)
	assert.Empty(t, b.Tomorrow)
}

func TestClassifyByTime_MidnightBoundary(t *testing.T) {
	tasks := []domain.Task{mkTask(t, "t", "2024-03-10")}

	b, err := ClassifyByTime(tasks, at(t, "2024-03-10T23:59:59"))
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, ids(b.Today))
	assert.Empty(t, b.Overdue, "a task due today is not overdue late in the evening")
}

func TestClassifyByTime_JustAfterMidnight(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "yesterday", "2024-03-09"),
		mkTask(t, "today", "2024-03-10"),
		mkTask(t, "tomorrow", "2024-03-11"),
	}

	b, err := ClassifyByTime(tasks, at(t, "2024-03-10T00:00:01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"yesterday"}, ids(b.Overdue))
	assert.Equal(t, []string{"today"}, ids(b.Today))
	assert.Equal(t, []string{"tomorrow"}, ids(b.Tomorrow))
}

func TestClassifyByTime_DoingIsAlwaysToday(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "late", "2024-03-09", withStatus(domain.StatusDoing)),
		mkTask(t, "future", "2024-04-01", withStatus(domain.StatusDoing)),
	}

	b, err := ClassifyByTime(tasks, at(t, "2024-03-10T09:00:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"late", "future"}, ids(b.Today))
	assert.Equal(t, []string{"late"}, ids(b.Overdue), "buckets overlap")
}

func TestClassifyByTime_DoneExclusions(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "doneToday", "2024-03-10", withStatus(domain.StatusDone)),
		mkTask(t, "doneTomorrow", "2024-03-11", withStatus(domain.StatusDone)),
		mkTask(t, "openTomorrow", "2024-03-11"),
	}

	b, err := ClassifyByTime(tasks, at(t, "2024-03-10T12:00:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"doneToday"}, ids(b.Today), "today includes finished work")
	assert.Equal(t, []string{"openTomorrow"}, ids(b.Tomorrow))
}

func TestClassifyByTime_ExcludesArchived(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "a1", "2024-03-01", archived()),
		mkTask(t, "a2", "2024-03-10", archived(), withStatus(domain.StatusDoing)),
		mkTask(t, "a3", "2024-03-11", archived()),
	}

	b, err := ClassifyByTime(tasks, at(t, "2024-03-10T12:00:00"))
	require.NoError(t, err)
	assert.Empty(t, b.Overdue)
	assert.Empty(t, b.Today)
	assert.Empty(t, b.Tomorrow)
}

func TestClassifyByTime_MonthRollover(t *testing.T) {
	tasks := []domain.Task{mkTask(t, "first", "2024-03-01")}

	b, err := ClassifyByTime(tasks, at(t, "2024-02-29T20:00:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, ids(b.Tomorrow))
}

func TestClassifyByTime_NowInOtherZone(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	d, err := domain.ParseDate("2024-03-10", loc)
	require.NoError(t, err)
	tk := mkTask(t, "t", "2024-03-10")
	tk.Deadline = d

	now := time.Date(2024, 3, 10, 22, 30, 0, 0, loc)
	b, err := ClassifyByTime([]domain.Task{tk}, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, ids(b.Today))
}

func TestClassifyByTime_EmptyAndInvalid(t *testing.T) {
	b, err := ClassifyByTime(nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, b.Overdue)
	assert.Empty(t, b.Today)
	assert.Empty(t, b.Tomorrow)

	_, err = ClassifyByTime([]domain.Task{mkTask(t, "x", "2024-01-01", withPriority("zzz"))}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestClassifyByTime_SkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	due := func(id, day string) domain.Task {
		tk := mkTask(t, id, day)
		tk.Deadline, err = domain.ParseDate(day, loc)
		require.NoError(t, err)
		return tk
	}
	tasks := []domain.Task{due("sat", "2024-09-07"), due("sun", "2024-09-08")}

	b, err := ClassifyByTime(tasks, time.Date(2024, 9, 7, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, []string{"sat"}, ids(b.Today))
	assert.Equal(t, []string{"sun"}, ids(b.Tomorrow))

	b, err = ClassifyByTime(tasks, time.Date(2024, 9, 8, 9, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, []string{"sat"}, ids(b.Overdue))
	assert.Equal(t, []string{"sun"}, ids(b.Today))
}
