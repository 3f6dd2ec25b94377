package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
	"github.com/alexanderramin/quadro/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (
	repository.ProjectRepo,
	repository.TaskRepo,
	repository.ProfileRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteTaskRepo(database, time.Local),
		repository.NewSQLiteProfileRepo(database),
		testutil.NewTestUoW(database)
}

func seedProject(t *testing.T, repo repository.ProjectRepo, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedTask(t *testing.T, repo repository.TaskRepo, projectID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, title, opts...)
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func titlesOf(views []app.TaskView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Task.Title)
	}
	return out
}
