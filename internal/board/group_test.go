package board

import (
	"testing"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy_StatusScenario(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "t1", "2024-01-01", withStatus(domain.StatusBacklog)),
		mkTask(t, "t2", "2024-01-01", withStatus(domain.StatusTodo)),
		mkTask(t, "t3", "2024-01-01", withStatus(domain.StatusTodo)),
		mkTask(t, "t4", "2024-01-01", withStatus(domain.StatusDone)),
		mkTask(t, "t5", "2024-01-01", withStatus(domain.StatusBacklog)),
	}

	g, err := GroupBy(tasks, KeyStatus)
	require.NoError(t, err)

	require.Len(t, g, 6, "every status is a key")
	assert.Equal(t, []string{"t1", "t5"}, ids(g["backlog"]))
	assert.Equal(t, []string{"t2", "t3"}, ids(g["todo"]))
	assert.Equal(t, []string{"t4"}, ids(g["done"]))
	for _, k := range []string{"blocked", "doing", "review"} {
		v, ok := g[k]
		assert.True(t, ok, "key %s present", k)
		assert.NotNil(t, v)
		assert.Empty(t, v)
	}
}

func TestGroupBy_OrdersWithinGroup(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "late", "2024-01-09", withPeriod(domain.PeriodEvening)),
		mkTask(t, "early", "2024-01-02", withPeriod(domain.PeriodEvening)),
		mkTask(t, "urgent", "2024-01-09", withPeriod(domain.PeriodEvening), withPriority(domain.PriorityUrgent)),
	}

	g, err := GroupByPeriod(tasks)
	require.NoError(t, err)
	assert.Len(t, g, 3)
	assert.Equal(t, []string{"early", "urgent", "late"}, ids(g[domain.PeriodEvening]))
	assert.Empty(t, g[domain.PeriodMorning])
}

func TestGroupBy_ExcludesArchived(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "keep", "2024-01-01", withPriority(domain.PriorityUrgent)),
		mkTask(t, "gone", "2024-01-01", withPriority(domain.PriorityUrgent), archived()),
	}

	for _, key := range []GroupKey{KeyStatus, KeyPeriod, KeyPriority} {
		g, err := GroupBy(tasks, key)
		require.NoError(t, err, key.String())
		for k, v := range g {
			assert.NotContains(t, ids(v), "gone", "%s/%s", key, k)
		}
	}

	byPrio, err := GroupByPriority(tasks)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, ids(byPrio[domain.PriorityUrgent]))
}

func TestGroupBy_UnknownKey(t *testing.T) {
	_, err := GroupBy(nil, GroupKey(42))
	assert.Error(t, err)
}

func TestGroupBy_InvalidEnumFails(t *testing.T) {
	_, err := GroupByStatus([]domain.Task{mkTask(t, "x", "2024-01-01", withStatus("archived"))})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGroupBy_Empty(t *testing.T) {
	g, err := GroupByStatus(nil)
	require.NoError(t, err)
	assert.Len(t, g, 6)
}

func TestGroupByProject(t *testing.T) {
	tasks := []domain.Task{
		mkTask(t, "a", "2024-01-02", withProject("p1")),
		mkTask(t, "b", "2024-01-01", withProject("p1")),
		mkTask(t, "c", "2024-01-01", withProject("orphan")),
	}

	g, err := GroupByProject(tasks, []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(g["p1"]))
	assert.Empty(t, g["p2"])
	assert.Equal(t, []string{"c"}, ids(g["orphan"]))
}
