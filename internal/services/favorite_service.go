package services

import (
	"context"

	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
)

// FavoriteService manages a user's set of favorited mentors.
type FavoriteService struct {
	favorites FavoriteStore
	profiles  ProfileStore
}

// NewFavoriteService creates a favorite service.
func NewFavoriteService(favorites FavoriteStore, profiles ProfileStore) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		profiles:  profiles,
	}
}

// List returns the mentor ids the user has favorited, in insertion order.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// Add favorites a mentor for the user. The mentor must exist; adding an
// already-favorited mentor is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID, mentorID string) error {
	if _, err := s.profiles.GetByID(ctx, mentorID); err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, userID, mentorID); err != nil {
		return err
	}
	metrics.FavoriteToggles.WithLabelValues("add").Inc()
	return nil
}

// Remove unfavorites a mentor for the user. Removing an absent favorite is a
// no-op, so the operation is safe to retry.
func (s *FavoriteService) Remove(ctx context.Context, userID, mentorID string) error {
	if err := s.favorites.Remove(ctx, userID, mentorID); err != nil {
		return err
	}
	metrics.FavoriteToggles.WithLabelValues("remove").Inc()
	return nil
}
