package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// OnboardingRepository tracks which users have seen the role-onboarding
// screen, so it is shown at most once per user across sessions.
type OnboardingRepository struct {
	kv storage.KV
	mu sync.Mutex
}

// NewOnboardingRepository creates an onboarding repository over kv.
func NewOnboardingRepository(kv storage.KV) *OnboardingRepository {
	return &OnboardingRepository{kv: kv}
}

// HasSeen reports whether userID has already seen onboarding.
func (r *OnboardingRepository) HasSeen(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	return seen[userID], nil
}

// MarkSeen records that userID has seen onboarding. Idempotent.
func (r *OnboardingRepository) MarkSeen(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen, err := r.load(ctx)
	if err != nil {
		return err
	}

	if seen[userID] {
		return nil
	}

	seen[userID] = true
	return r.save(ctx, seen)
}

func (r *OnboardingRepository) load(ctx context.Context) (map[string]bool, error) {
	data, err := r.kv.Get(ctx, onboardingKey)
	if apperrors.Is(err, storage.ErrKeyNotFound) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding flags: %w", err)
	}

	var seen map[string]bool
	if err := json.Unmarshal(data, &seen); err != nil {
		return nil, fmt.Errorf("failed to decode onboarding flags: %w", err)
	}
	return seen, nil
}

func (r *OnboardingRepository) save(ctx context.Context, seen map[string]bool) error {
	data, err := json.Marshal(seen)
	if err != nil {
		return fmt.Errorf("failed to encode onboarding flags: %w", err)
	}
	if err := r.kv.Set(ctx, onboardingKey, data); err != nil {
		return fmt.Errorf("failed to save onboarding flags: %w", err)
	}
	return nil
}
