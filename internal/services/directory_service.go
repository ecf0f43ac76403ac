package services

import (
	"context"
	"strconv"

	"github.com/seniorconnect/seniorconnect-api/internal/directory"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
)

// DirectoryService serves the browsable mentor directory: the cached profile
// collection filtered and ordered per request.
type DirectoryService struct {
	source    DirectorySource
	profiles  ProfileStore
	favorites FavoriteStore
}

// NewDirectoryService creates a directory service.
func NewDirectoryService(source DirectorySource, profiles ProfileStore, favorites FavoriteStore) *DirectoryService {
	return &DirectoryService{
		source:    source,
		profiles:  profiles,
		favorites: favorites,
	}
}

// List returns the directory view for one user: unavailable mentors removed,
// the user's filters applied, ordered by priority score descending. The
// favorites set is only fetched when the favorites-only filter is on.
func (s *DirectoryService) List(ctx context.Context, userID string, cfg directory.Config) ([]*models.SeniorProfile, error) {
	profiles, err := s.source.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var favoriteSet map[string]bool
	if cfg.FavoritesOnly {
		ids, err := s.favorites.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		favoriteSet = make(map[string]bool, len(ids))
		for _, id := range ids {
			favoriteSet[id] = true
		}
	}

	result := directory.Apply(profiles, favoriteSet, cfg)
	metrics.DirectoryResults.WithLabelValues(strconv.FormatBool(cfg.FavoritesOnly)).Observe(float64(len(result)))
	return result, nil
}

// GetByID returns a single mentor profile by its directory id. Lookups go to
// the store rather than the cache so a just-registered mentor is visible by
// id even before the next cache refresh.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (*models.SeniorProfile, error) {
	return s.profiles.GetByID(ctx, id)
}
