package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/google/uuid"
)

// Converted holds the domain objects a validated snapshot describes.
// Timestamps are left zero for the caller to stamp.
type Converted struct {
	Profile  *domain.Profile
	Projects []*domain.Project
	Tasks    []*domain.Task
}

// Convert turns a validated snapshot into domain objects, anchoring every
// deadline at midnight in loc. Tasks without an ID get a fresh one.
func Convert(s *Snapshot, loc *time.Location) (*Converted, error) {
	out := &Converted{
		Projects: make([]*domain.Project, 0, len(s.Projects)),
		Tasks:    make([]*domain.Task, 0, len(s.Tasks)),
	}

	if s.Profile != nil {
		out.Profile = &domain.Profile{
			ID:        domain.LocalProfileID,
			FirstName: s.Profile.FirstName,
			LastName:  s.Profile.LastName,
			AvatarURL: s.Profile.AvatarURL,
		}
	}

	for _, sp := range s.Projects {
		status := domain.ProjectActive
		if sp.Status != "" {
			st, err := domain.ParseProjectStatus(sp.Status)
			if err != nil {
				return nil, fmt.Errorf("project %q: %w", sp.Name, err)
			}
			status = st
		}
		color, err := domain.ResolveColor(sp.Color)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", sp.Name, err)
		}
		out.Projects = append(out.Projects, &domain.Project{
			ID:     sp.ID,
			Name:   strings.TrimSpace(sp.Name),
			Status: status,
			Color:  color,
		})
	}

	for _, st := range s.Tasks {
		t, err := convertTask(st, loc)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", st.Title, err)
		}
		out.Tasks = append(out.Tasks, t)
	}
	return out, nil
}

func convertTask(st SnapshotTask, loc *time.Location) (*domain.Task, error) {
	deadline, err := domain.ParseDate(st.Deadline, loc)
	if err != nil {
		return nil, err
	}
	period, err := domain.ParsePeriod(st.Period)
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParsePriority(st.Priority)
	if err != nil {
		return nil, err
	}
	status := domain.StatusBacklog
	if st.Status != "" {
		if status, err = domain.ParseStatus(st.Status); err != nil {
			return nil, err
		}
	}
	id := st.ID
	if id == "" {
		id = uuid.New().String()
	}
	return &domain.Task{
		ID:          id,
		ProjectID:   st.ProjectID,
		Title:       strings.TrimSpace(st.Title),
		Description: strings.TrimSpace(st.Description),
		Deadline:    deadline,
		Period:      period,
		Priority:    priority,
		Status:      status,
		IsArchived:  st.Archived,
	}, nil
}

// FromDomain builds a snapshot of the given state. Deadlines are written
// from each task's own calendar fields.
func FromDomain(profile *domain.Profile, projects []*domain.Project, tasks []*domain.Task, exportedAt time.Time) *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: exportedAt.UTC(),
		Projects:   make([]SnapshotProject, 0, len(projects)),
		Tasks:      make([]SnapshotTask, 0, len(tasks)),
	}
	if profile != nil && (profile.FirstName != "" || profile.LastName != "" || profile.AvatarURL != "") {
		s.Profile = &SnapshotProfile{
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			AvatarURL: profile.AvatarURL,
		}
	}
	for _, p := range projects {
		s.Projects = append(s.Projects, SnapshotProject{
			ID:     p.ID,
			Name:   p.Name,
			Status: string(p.Status),
			Color:  p.Color,
		})
	}
	for _, t := range tasks {
		s.Tasks = append(s.Tasks, SnapshotTask{
			ID:          t.ID,
			ProjectID:   t.ProjectID,
			Title:       t.Title,
			Description: t.Description,
			Deadline:    domain.FormatDate(t.Deadline),
			Period:      string(t.Period),
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			Archived:    t.IsArchived,
		})
	}
	return s
}
