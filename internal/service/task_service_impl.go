package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create assigns an ID and timestamps. New tasks start in the backlog unless
// a status is given.
func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": t.ProjectID}
	defer func() { observe(ctx, s.observer, "create-task", startedAt, fields, err) }()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	fields["task_id"] = t.ID
	if t.Status == "" {
		t.Status = domain.StatusBacklog
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := s.validate(ctx, t); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeArchived bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeArchived)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": t.ID}
	defer func() { observe(ctx, s.observer, "update-task", startedAt, fields, err) }()

	if err := s.validate(ctx, t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	return s.mutate(ctx, "set-task-status", id, func(t *domain.Task) { t.Status = status })
}

func (s *taskService) SetPeriod(ctx context.Context, id string, period domain.Period) (*domain.Task, error) {
	return s.mutate(ctx, "set-task-period", id, func(t *domain.Task) { t.Period = period })
}

func (s *taskService) SetPriority(ctx context.Context, id string, priority domain.Priority) (*domain.Task, error) {
	return s.mutate(ctx, "set-task-priority", id, func(t *domain.Task) { t.Priority = priority })
}

func (s *taskService) Archive(ctx context.Context, id string) (err error) {
	defer s.track(ctx, "archive-task", id, time.Now(), &err)()
	return s.tasks.SetArchived(ctx, id, true)
}

func (s *taskService) Unarchive(ctx context.Context, id string) (err error) {
	defer s.track(ctx, "unarchive-task", id, time.Now(), &err)()
	return s.tasks.SetArchived(ctx, id, false)
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	defer s.track(ctx, "delete-task", id, time.Now(), &err)()
	return s.tasks.Delete(ctx, id)
}

// track returns the deferred report for a single-task use case.
func (s *taskService) track(ctx context.Context, name, id string, startedAt time.Time, err *error) func() {
	return func() {
		observe(ctx, s.observer, name, startedAt, map[string]any{"task_id": id}, *err)
	}
}

func (s *taskService) mutate(ctx context.Context, name, id string, apply func(*domain.Task)) (t *domain.Task, err error) {
	defer s.track(ctx, name, id, time.Now(), &err)()

	t, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(t)
	if err := t.ValidateEnums(); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) validate(ctx context.Context, t *domain.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: project %s does not exist", domain.ErrMissingProject, t.ProjectID)
		}
		return err
	}
	return nil
}
