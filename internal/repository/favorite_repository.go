package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// FavoriteRepository persists favorite links on the KV substrate. Add and
// Remove are both idempotent: re-adding an existing link and removing an
// absent one are no-ops.
type FavoriteRepository struct {
	kv storage.KV
	mu sync.Mutex
}

// NewFavoriteRepository creates a favorite repository over kv.
func NewFavoriteRepository(kv storage.KV) *FavoriteRepository {
	return &FavoriteRepository{kv: kv}
}

// ListByUser returns the mentor ids favorited by userID.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	mentorIDs := []string{}
	for _, link := range links {
		if link.UserID == userID {
			mentorIDs = append(mentorIDs, link.MentorID)
		}
	}
	return mentorIDs, nil
}

// Add records a favorite link. No-op if the pair already exists.
func (r *FavoriteRepository) Add(ctx context.Context, userID, mentorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, link := range links {
		if link.UserID == userID && link.MentorID == mentorID {
			return nil
		}
	}

	links = append(links, models.FavoriteLink{
		ID:       uuid.NewString(),
		UserID:   userID,
		MentorID: mentorID,
	})
	return r.save(ctx, links)
}

// Remove deletes a favorite link. No-op if the pair does not exist.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, mentorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load(ctx)
	if err != nil {
		return err
	}

	filtered := links[:0]
	removed := false
	for _, link := range links {
		if link.UserID == userID && link.MentorID == mentorID {
			removed = true
			continue
		}
		filtered = append(filtered, link)
	}

	if !removed {
		return nil
	}
	return r.save(ctx, filtered)
}

func (r *FavoriteRepository) load(ctx context.Context) ([]models.FavoriteLink, error) {
	data, err := r.kv.Get(ctx, favoritesKey)
	if apperrors.Is(err, storage.ErrKeyNotFound) {
		return []models.FavoriteLink{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var links []models.FavoriteLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return links, nil
}

func (r *FavoriteRepository) save(ctx context.Context, links []models.FavoriteLink) error {
	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := r.kv.Set(ctx, favoritesKey, data); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
