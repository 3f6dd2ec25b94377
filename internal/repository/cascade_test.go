package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/quadro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascadeDelete_ProjectToTasks verifies that deleting a project cascades to its tasks.
func TestCascadeDelete_ProjectToTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(db)
	taskRepo := NewSQLiteTaskRepo(db, nil)

	proj := testutil.NewTestProject("CascadeProj")
	require.NoError(t, projRepo.Create(ctx, proj))

	task := testutil.NewTestTask(proj.ID, "Child Task")
	require.NoError(t, taskRepo.Create(ctx, task))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	_, err := taskRepo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound, "task should be cascade-deleted when project is deleted")
}
