package service

import (
	"context"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	ToggleStatus(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
	SetPeriod(ctx context.Context, id string, period domain.Period) (*domain.Task, error)
	SetPriority(ctx context.Context, id string, priority domain.Priority) (*domain.Task, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}

type BoardService interface {
	app.DashboardUseCase
	app.KanbanUseCase
	app.BacklogUseCase
	app.ListTasksUseCase
	app.ProjectDetailUseCase
	app.ProjectsOverviewUseCase
}

type TransferService interface {
	app.ExportUseCase
	app.ImportUseCase
}
