package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/alexanderramin/quadro/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

// Get returns the stored profile, or an empty one before the first save.
func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if isNotFound(err) {
		return &domain.Profile{ID: domain.LocalProfileID}, nil
	}
	return p, err
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "update-profile", startedAt, nil, err) }()

	p.ID = domain.LocalProfileID
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.AvatarURL = strings.TrimSpace(p.AvatarURL)
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Upsert(ctx, p)
}
