package app

import "context"

type DashboardUseCase interface {
	Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type KanbanUseCase interface {
	Kanban(ctx context.Context, req KanbanRequest) (*KanbanResponse, error)
}

type BacklogUseCase interface {
	Backlog(ctx context.Context, req BacklogRequest) (*TaskListResponse, error)
}

type ListTasksUseCase interface {
	List(ctx context.Context, req ListRequest) (*TaskListResponse, error)
}

type ProjectDetailUseCase interface {
	ProjectDetail(ctx context.Context, projectID string) (*ProjectDetailResponse, error)
}

type ProjectsOverviewUseCase interface {
	Projects(ctx context.Context) (*ProjectsResponse, error)
}

type ExportUseCase interface {
	Export(ctx context.Context, path string) (*TransferResult, error)
}

type ImportUseCase interface {
	Import(ctx context.Context, path string) (*TransferResult, error)
}
