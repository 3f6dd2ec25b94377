package app

import (
	"time"

	"github.com/alexanderramin/quadro/internal/board"
	"github.com/alexanderramin/quadro/internal/domain"
)

// TaskView pairs a task with the project fields every listing shows.
type TaskView struct {
	Task         domain.Task
	ProjectName  string
	ProjectColor string
}

type DashboardRequest struct {
	Now *time.Time
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Greeting    string
	Overdue     []TaskView
	Today       map[domain.Period][]TaskView
	Tomorrow    []TaskView
}

// TodayCount returns the number of tasks across all periods of today.
func (r *DashboardResponse) TodayCount() int {
	n := 0
	for _, views := range r.Today {
		n += len(views)
	}
	return n
}

type KanbanRequest struct {
	ProjectID string
}

type KanbanColumn struct {
	Status domain.Status
	Tasks  []TaskView
}

// KanbanResponse holds one column per status in board order.
type KanbanResponse struct {
	Columns []KanbanColumn
}

type BacklogRequest struct {
	ProjectID string
	Priority  domain.Priority
}

type ListRequest struct {
	ProjectID       string
	Status          domain.Status
	Priority        domain.Priority
	IncludeArchived bool
}

// Filter converts the request to the board filter it describes.
func (r ListRequest) Filter() board.Filter {
	return board.Filter{
		ProjectID:       r.ProjectID,
		Status:          r.Status,
		Priority:        r.Priority,
		IncludeArchived: r.IncludeArchived,
	}
}

type TaskListResponse struct {
	Tasks []TaskView
}

type ProjectDetailResponse struct {
	Project  domain.Project
	Tasks    []TaskView
	Progress board.Progress
	// OpenByPriority counts unfinished tasks per priority.
	OpenByPriority map[domain.Priority]int
}

type ProjectOverview struct {
	Project  domain.Project
	Progress board.Progress
}

type ProjectsResponse struct {
	Active []ProjectOverview
	Paused []ProjectOverview
}
