package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetBeforeSave(t *testing.T) {
	_, _, profiles, _ := setupRepos(t)
	svc := NewProfileService(profiles)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LocalProfileID, p.ID)
	assert.Equal(t, "you", p.DisplayName())
}

func TestProfileService_Update(t *testing.T) {
	_, _, profiles, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewProfileService(profiles)

	require.NoError(t, svc.Update(ctx, &domain.Profile{FirstName: " Ana ", LastName: "Lima"}))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", p.DisplayName())
	assert.False(t, p.UpdatedAt.IsZero())

	err = svc.Update(ctx, &domain.Profile{AvatarURL: "javascript:alert(1)"})
	assert.ErrorIs(t, err, domain.ErrInvalidAvatarURL)
}

func TestProfileService_ReportsUpdates(t *testing.T) {
	_, _, profiles, _ := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewProfileService(profiles, obs)

	require.NoError(t, svc.Update(context.Background(), &domain.Profile{FirstName: "Ana"}))
	require.Error(t, svc.Update(context.Background(), &domain.Profile{AvatarURL: "ftp://x"}))

	require.Len(t, obs.events, 2)
	assert.Equal(t, "update-profile", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.False(t, obs.events[1].Success)
}
