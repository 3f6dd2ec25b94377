package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
)

// ValidateSnapshot checks the snapshot before conversion and returns every
// problem found. knownProjects holds IDs that already exist in the store and
// may be referenced by tasks without appearing in the snapshot.
func ValidateSnapshot(s *Snapshot, knownProjects map[string]bool) []error {
	var errs []error

	if s.Version > SnapshotVersion {
		errs = append(errs, fmt.Errorf("version %d is newer than supported version %d", s.Version, SnapshotVersion))
	}
	if s.Profile != nil {
		p := domain.Profile{FirstName: s.Profile.FirstName, LastName: s.Profile.LastName, AvatarURL: s.Profile.AvatarURL}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("profile: %w", err))
		}
	}

	projectRefs := make(map[string]bool, len(knownProjects)+len(s.Projects))
	for id := range knownProjects {
		projectRefs[id] = true
	}
	errs = append(errs, validateProjects(s.Projects, projectRefs)...)
	errs = append(errs, validateTasks(s.Tasks, projectRefs)...)

	return errs
}

func validateProjects(projects []SnapshotProject, refs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Status != "" {
			if _, err := domain.ParseProjectStatus(p.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: %w", prefix, err))
			}
		}
		if _, err := domain.ResolveColor(p.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s.color: %w", prefix, err))
		}
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required so tasks can reference it", prefix))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, p.ID))
		}
		seen[p.ID] = true
		refs[p.ID] = true
	}
	return errs
}

func validateTasks(tasks []SnapshotTask, projectRefs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.ID != "" {
			if seen[t.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, t.ID))
			}
			seen[t.ID] = true
		}
		if err := domain.ValidateTitle(t.Title); err != nil {
			errs = append(errs, fmt.Errorf("%s.title: %w", prefix, err))
		}
		if t.ProjectID == "" {
			errs = append(errs, fmt.Errorf("%s.project_id is required", prefix))
		} else if !projectRefs[t.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id %q references unknown project", prefix, t.ProjectID))
		}
		if t.Deadline == "" {
			errs = append(errs, fmt.Errorf("%s.deadline: %w", prefix, domain.ErrMissingDeadline))
		} else if _, err := time.Parse(domain.DateLayout, t.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, t.Deadline))
		}
		if _, err := domain.ParsePeriod(t.Period); err != nil {
			errs = append(errs, fmt.Errorf("%s.period: %w", prefix, err))
		}
		if _, err := domain.ParsePriority(t.Priority); err != nil {
			errs = append(errs, fmt.Errorf("%s.priority: %w", prefix, err))
		}
		if t.Status != "" {
			if _, err := domain.ParseStatus(t.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: %w", prefix, err))
			}
		}
	}
	return errs
}
