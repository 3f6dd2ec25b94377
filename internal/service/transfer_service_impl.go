package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/quadro/internal/app"
	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/importer"
	"github.com/alexanderramin/quadro/internal/repository"
	"github.com/natefinch/atomic"
)

type transferService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

// NewTransferService wires export and import. Imported deadlines are
// anchored at midnight in loc; nil means time.Local.
func NewTransferService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
	loc *time.Location,
	observers ...UseCaseObserver,
) TransferService {
	if loc == nil {
		loc = time.Local
	}
	return &transferService{
		projects: projects,
		tasks:    tasks,
		profiles: profiles,
		uow:      uow,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export writes every project, task (archived included) and the profile to
// path. The file is replaced atomically.
func (s *transferService) Export(ctx context.Context, path string) (result *app.TransferResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() { observe(ctx, s.observer, "export", startedAt, fields, err) }()

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, true)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	snap := importer.FromDomain(profile, projects, tasks, time.Now())
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	fields["projects"] = len(snap.Projects)
	fields["tasks"] = len(snap.Tasks)
	return &app.TransferResult{Path: path, Projects: len(snap.Projects), Tasks: len(snap.Tasks)}, nil
}

// Import merges a snapshot into the store: rows whose ID exists are
// updated, the rest are created. Nothing is written unless every row
// applies.
func (s *transferService) Import(ctx context.Context, path string) (result *app.TransferResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() { observe(ctx, s.observer, "import", startedAt, fields, err) }()

	snap, err := importer.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	existing, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.ID] = true
	}
	if errs := importer.ValidateSnapshot(snap, known); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	conv, err := importer.Convert(snap, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx, s.loc)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		if conv.Profile != nil {
			conv.Profile.UpdatedAt = now
			if err := txProfiles.Upsert(ctx, conv.Profile); err != nil {
				return err
			}
		}
		for _, p := range conv.Projects {
			if err := upsertProject(ctx, txProjects, p, now); err != nil {
				return fmt.Errorf("importing project %q: %w", p.Name, err)
			}
		}
		for _, t := range conv.Tasks {
			if err := upsertTask(ctx, txTasks, t, now); err != nil {
				return fmt.Errorf("importing task %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["projects"] = len(conv.Projects)
	fields["tasks"] = len(conv.Tasks)
	return &app.TransferResult{Path: path, Projects: len(conv.Projects), Tasks: len(conv.Tasks)}, nil
}

func upsertProject(ctx context.Context, repo *repository.SQLiteProjectRepo, p *domain.Project, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = now
	err := repo.Update(ctx, p)
	if !isNotFound(err) {
		return err
	}
	p.CreatedAt = now
	return repo.Create(ctx, p)
}

func upsertTask(ctx context.Context, repo *repository.SQLiteTaskRepo, t *domain.Task, now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = now
	err := repo.Update(ctx, t)
	if !isNotFound(err) {
		return err
	}
	t.CreatedAt = now
	return repo.Create(ctx, t)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
