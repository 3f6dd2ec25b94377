package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
)

// Clock returns the current time. Board views take one so tests can pin "now".
type Clock func() time.Time

// projectIndex maps project IDs to projects for decorating task views.
type projectIndex map[string]*domain.Project

func loadProjectIndex(ctx context.Context, projects repository.ProjectRepo) (projectIndex, []*domain.Project, error) {
	list, err := projects.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	idx := make(projectIndex, len(list))
	for _, p := range list {
		idx[p.ID] = p
	}
	return idx, list, nil
}

func (idx projectIndex) view(t domain.Task) app.TaskView {
	v := app.TaskView{Task: t}
	if p, ok := idx[t.ProjectID]; ok {
		v.ProjectName = p.Name
		v.ProjectColor = p.Color
	}
	return v
}

func (idx projectIndex) views(tasks []domain.Task) []app.TaskView {
	out := make([]app.TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, idx.view(t))
	}
	return out
}

// derefTasks copies repository results into the value slice the board
// engine works on.
func derefTasks(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
