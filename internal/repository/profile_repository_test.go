package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

func newProfile(userID, name string) *models.SeniorProfile {
	return &models.SeniorProfile{
		UserID:             userID,
		Name:               name,
		Email:              name + "@uem.edu.in",
		PrimaryDomain:      "Web Development",
		LinkedinURL:        "https://linkedin.com/in/" + name,
		PlacementStatus:    models.PlacementPlaced,
		InternshipStatus:   models.InternshipCompleted,
		ProjectExperience:  models.ProjectAdvanced,
		AvailabilityStatus: models.AvailabilityActive,
		MentorIntent:       []string{"placement"},
		PriorityScore:      100,
	}
}

func TestProfileRepository_AppendAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(storage.NewMemory())

	stored, err := repo.Append(ctx, newProfile("user-1", "arjun"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "arjun", got.Name)
}

func TestProfileRepository_AppendRejectsSecondProfileForUser(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(storage.NewMemory())

	_, err := repo.Append(ctx, newProfile("user-1", "arjun"))
	require.NoError(t, err)

	_, err = repo.Append(ctx, newProfile("user-1", "arjun-again"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProfileRepository_GetAllEmptyWhenKeyMissing(t *testing.T) {
	repo := NewProfileRepository(storage.NewMemory())

	profiles, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(storage.NewMemory())

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Append(ctx, newProfile("user-"+name, name))
		require.NoError(t, err)
	}

	profiles, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "first", profiles[0].Name)
	assert.Equal(t, "second", profiles[1].Name)
	assert.Equal(t, "third", profiles[2].Name)
}

func TestProfileRepository_GetByUserIDMiss(t *testing.T) {
	repo := NewProfileRepository(storage.NewMemory())

	_, err := repo.GetByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileRepository_UpdatePreservesScoreSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(storage.NewMemory())

	stored, err := repo.Append(ctx, newProfile("user-1", "arjun"))
	require.NoError(t, err)

	edited := *stored
	edited.Bio = "new bio"
	edited.PriorityScore = 20 // must be ignored: the stored snapshot wins
	require.NoError(t, repo.Update(ctx, &edited))

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "new bio", got.Bio)
	assert.Equal(t, 100, got.PriorityScore)
	assert.Equal(t, stored.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestProfileRepository_UpdateUnknownID(t *testing.T) {
	repo := NewProfileRepository(storage.NewMemory())

	p := newProfile("user-1", "arjun")
	p.ID = "no-such-id"
	assert.ErrorIs(t, repo.Update(context.Background(), p), apperrors.ErrNotFound)
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(storage.NewMemory())

	require.NoError(t, SeedDemoData(ctx, repo))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, 0)

	// Seeding again must not duplicate
	require.NoError(t, SeedDemoData(ctx, repo))
	again, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, again)

	// Every seeded score is within the scorer's range
	profiles, err := repo.GetAll(ctx)
	require.NoError(t, err)
	for _, p := range profiles {
		assert.GreaterOrEqual(t, p.PriorityScore, models.MinPriorityScore)
		assert.LessOrEqual(t, p.PriorityScore, models.MaxPriorityScore)
	}
}
