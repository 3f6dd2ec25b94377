package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID accepts a full ID, a project name (case-insensitive) or
// a unique ID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
		ids = append(ids, p.ID)
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	return matchPrefix("project", ids, input)
}

// resolveProjectForFlag resolves an optional --project value; empty stays empty.
func resolveProjectForFlag(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return resolveProjectID(ctx, app, input)
}

// resolveTaskID accepts a full task ID or a unique prefix, archived tasks included.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		ids = append(ids, t.ID)
	}
	return matchPrefix("task", ids, input)
}

func matchPrefix(kind string, ids []string, input string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
