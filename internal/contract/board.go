package contract

import "github.com/alexanderramin/quadro/internal/app"

type TaskView = app.TaskView

type DashboardRequest = app.DashboardRequest

type DashboardResponse = app.DashboardResponse

type KanbanRequest = app.KanbanRequest

type KanbanColumn = app.KanbanColumn

type KanbanResponse = app.KanbanResponse

type BacklogRequest = app.BacklogRequest

type ListRequest = app.ListRequest

type TaskListResponse = app.TaskListResponse

type ProjectDetailResponse = app.ProjectDetailResponse

type ProjectOverview = app.ProjectOverview

type ProjectsResponse = app.ProjectsResponse
