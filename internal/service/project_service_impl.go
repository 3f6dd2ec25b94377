package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "create-project", startedAt, fields, err) }()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	fields["project_id"] = p.ID
	if err := normalizeProject(p); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": p.ID}
	defer func() { observe(ctx, s.observer, "update-project", startedAt, fields, err) }()

	if err := normalizeProject(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// ToggleStatus flips the project between active and paused.
func (s *projectService) ToggleStatus(ctx context.Context, id string) (p *domain.Project, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": id}
	defer func() { observe(ctx, s.observer, "toggle-project", startedAt, fields, err) }()

	p, err = s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = p.Status.Toggled()
	fields["status"] = string(p.Status)
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project together with all of its tasks, archived ones
// included.
func (s *projectService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": id}
	defer func() { observe(ctx, s.observer, "delete-project", startedAt, fields, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx, nil)

		if _, err := txProjects.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := txTasks.DeleteByProject(ctx, id)
		if err != nil {
			return err
		}
		fields["tasks_deleted"] = n
		if err := txProjects.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting project %s: %w", id, err)
		}
		return nil
	})
}

func normalizeProject(p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	color, err := domain.ResolveColor(p.Color)
	if err != nil {
		return err
	}
	p.Color = color
	return p.Validate()
}
