package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// ProfileRepository persists the mentor profile collection on the KV
// substrate. The whole collection is read and rewritten on every mutation.
//
// The mutex serializes read-modify-write cycles within this process. Writers
// in other processes sharing the same substrate can still race; the last
// write wins and no coordination is attempted.
type ProfileRepository struct {
	kv storage.KV
	mu sync.Mutex
}

// NewProfileRepository creates a profile repository over kv.
func NewProfileRepository(kv storage.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

// Append inserts a new profile, assigning its id and creation timestamp.
// One profile per user is enforced here: a second profile for the same
// owning user is rejected with apperrors.ErrConflict.
func (r *ProfileRepository) Append(ctx context.Context, profile *models.SeniorProfile) (*models.SeniorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range profiles {
		if existing.UserID == profile.UserID {
			return nil, apperrors.ConflictError("mentor profile already exists for user")
		}
	}

	stored := *profile
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	profiles = append(profiles, &stored)
	if err := r.save(ctx, profiles); err != nil {
		return nil, err
	}

	return &stored, nil
}

// GetAll returns the full profile collection in insertion order. A missing
// key is an empty directory, not an error.
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*models.SeniorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID returns the profile with the given id, or apperrors.ErrNotFound.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.SeniorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, apperrors.NotFoundError("mentor profile")
}

// GetByUserID returns the first profile owned by userID, or
// apperrors.ErrNotFound. A miss is a normal condition for users who never
// registered as mentors.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.SeniorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.UserID == userID {
			return p, nil
		}
	}

	return nil, apperrors.NotFoundError("mentor profile")
}

// Update replaces the stored profile with the same id. Last writer wins;
// there is no optimistic concurrency check. The priority score is carried
// over unchanged from the stored record: it is a creation-time snapshot and
// is deliberately not re-derived on later edits.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.SeniorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, existing := range profiles {
		if existing.ID == profile.ID {
			updated := *profile
			updated.CreatedAt = existing.CreatedAt
			updated.PriorityScore = existing.PriorityScore
			profiles[i] = &updated
			return r.save(ctx, profiles)
		}
	}

	return apperrors.NotFoundError("mentor profile")
}

// Count returns the number of stored profiles.
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(profiles), nil
}

func (r *ProfileRepository) load(ctx context.Context) ([]*models.SeniorProfile, error) {
	data, err := r.kv.Get(ctx, profilesKey)
	if apperrors.Is(err, storage.ErrKeyNotFound) {
		return []*models.SeniorProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	var profiles []*models.SeniorProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) save(ctx context.Context, profiles []*models.SeniorProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := r.kv.Set(ctx, profilesKey, data); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}
