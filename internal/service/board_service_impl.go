package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/board"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
)

type boardService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	profiles repository.ProfileRepo
	now      Clock
	observer UseCaseObserver
}

// NewBoardService builds the read-side views. A nil clock means time.Now.
func NewBoardService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	profiles repository.ProfileRepo,
	clock Clock,
	observers ...UseCaseObserver,
) BoardService {
	if clock == nil {
		clock = time.Now
	}
	return &boardService{
		tasks:    tasks,
		projects: projects,
		profiles: profiles,
		now:      clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *boardService) Dashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "dashboard", startedAt, fields, err) }()

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	idx, tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	dash, err := board.BuildDashboard(tasks, now)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}

	resp = &app.DashboardResponse{
		GeneratedAt: now,
		Greeting:    s.greeting(ctx),
		Overdue:     idx.views(dash.Overdue),
		Today:       make(map[domain.Period][]app.TaskView, len(dash.Today)),
		Tomorrow:    idx.views(dash.Tomorrow),
	}
	for period, list := range dash.Today {
		resp.Today[period] = idx.views(list)
	}
	fields["overdue"] = len(resp.Overdue)
	fields["today"] = resp.TodayCount()
	fields["tomorrow"] = len(resp.Tomorrow)
	return resp, nil
}

func (s *boardService) Kanban(ctx context.Context, req app.KanbanRequest) (resp *app.KanbanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": req.ProjectID}
	defer func() { observe(ctx, s.observer, "kanban", startedAt, fields, err) }()

	idx, tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err = board.FilterTasks(tasks, board.Filter{ProjectID: req.ProjectID})
	if err != nil {
		return nil, err
	}
	groups, err := board.GroupByStatus(tasks)
	if err != nil {
		return nil, fmt.Errorf("grouping kanban: %w", err)
	}

	fields["tasks"] = len(tasks)
	resp = &app.KanbanResponse{Columns: make([]app.KanbanColumn, 0, len(domain.AllStatuses()))}
	for _, st := range domain.AllStatuses() {
		resp.Columns = append(resp.Columns, app.KanbanColumn{Status: st, Tasks: idx.views(groups[st])})
	}
	return resp, nil
}

// Backlog narrows by project and priority, then takes the backlog column of
// the status grouping.
func (s *boardService) Backlog(ctx context.Context, req app.BacklogRequest) (resp *app.TaskListResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": req.ProjectID, "priority": string(req.Priority)}
	defer func() { observe(ctx, s.observer, "backlog", startedAt, fields, err) }()

	idx, tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err = board.FilterTasks(tasks, board.Filter{ProjectID: req.ProjectID, Priority: req.Priority})
	if err != nil {
		return nil, err
	}
	groups, err := board.GroupByStatus(tasks)
	if err != nil {
		return nil, fmt.Errorf("grouping backlog: %w", err)
	}
	fields["tasks"] = len(groups[domain.StatusBacklog])
	return &app.TaskListResponse{Tasks: idx.views(groups[domain.StatusBacklog])}, nil
}

func (s *boardService) List(ctx context.Context, req app.ListRequest) (resp *app.TaskListResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"include_archived": req.IncludeArchived}
	defer func() { observe(ctx, s.observer, "list-tasks", startedAt, fields, err) }()

	idx, _, err := loadProjectIndex(ctx, s.projects)
	if err != nil {
		return nil, err
	}
	all, err := s.tasks.List(ctx, req.IncludeArchived)
	if err != nil {
		return nil, err
	}
	tasks, err := board.FilterTasks(derefTasks(all), req.Filter())
	if err != nil {
		return nil, err
	}
	sorted, err := board.SortTasks(tasks)
	if err != nil {
		return nil, fmt.Errorf("sorting tasks: %w", err)
	}
	fields["tasks"] = len(sorted)
	return &app.TaskListResponse{Tasks: idx.views(sorted)}, nil
}

func (s *boardService) ProjectDetail(ctx context.Context, projectID string) (resp *app.ProjectDetailResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": projectID}
	defer func() { observe(ctx, s.observer, "project-detail", startedAt, fields, err) }()

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	list, err := s.tasks.ListByProject(ctx, projectID, false)
	if err != nil {
		return nil, err
	}
	tasks := derefTasks(list)
	sorted, err := board.SortTasks(tasks)
	if err != nil {
		return nil, fmt.Errorf("sorting project tasks: %w", err)
	}
	unfinished := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsDone() {
			unfinished = append(unfinished, t)
		}
	}
	byPriority, err := board.GroupByPriority(unfinished)
	if err != nil {
		return nil, fmt.Errorf("grouping project tasks: %w", err)
	}
	counts := make(map[domain.Priority]int, len(byPriority))
	for prio, list := range byPriority {
		counts[prio] = len(list)
	}

	idx := projectIndex{p.ID: p}
	return &app.ProjectDetailResponse{
		Project:        *p,
		Tasks:          idx.views(sorted),
		Progress:       board.SummarizeProject(tasks, p.ID),
		OpenByPriority: counts,
	}, nil
}

// Projects lists every project with its progress, active ones first.
func (s *boardService) Projects(ctx context.Context) (resp *app.ProjectsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "projects", startedAt, fields, err) }()

	_, projects, err := loadProjectIndex(ctx, s.projects)
	if err != nil {
		return nil, err
	}
	list, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	byProject, err := board.GroupByProject(derefTasks(list), ids)
	if err != nil {
		return nil, fmt.Errorf("grouping tasks by project: %w", err)
	}

	fields["projects"] = len(projects)
	resp = &app.ProjectsResponse{
		Active: []app.ProjectOverview{},
		Paused: []app.ProjectOverview{},
	}
	for _, p := range projects {
		ov := app.ProjectOverview{Project: *p, Progress: board.SummarizeProject(byProject[p.ID], p.ID)}
		if p.Status == domain.ProjectPaused {
			resp.Paused = append(resp.Paused, ov)
		} else {
			resp.Active = append(resp.Active, ov)
		}
	}
	return resp, nil
}

func (s *boardService) load(ctx context.Context) (projectIndex, []domain.Task, error) {
	idx, _, err := loadProjectIndex(ctx, s.projects)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	return idx, derefTasks(list), nil
}

func (s *boardService) greeting(ctx context.Context) string {
	if s.profiles == nil {
		return "you"
	}
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return "you"
	}
	return p.DisplayName()
}
