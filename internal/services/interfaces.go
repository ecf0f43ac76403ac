package services

import (
	"context"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
)

// ProfileStore is the repository capability the services need for mentor
// profiles. Abstracting it keeps the scoring and filtering logic testable
// without touching the storage substrate.
type ProfileStore interface {
	Append(ctx context.Context, profile *models.SeniorProfile) (*models.SeniorProfile, error)
	GetAll(ctx context.Context) ([]*models.SeniorProfile, error)
	GetByID(ctx context.Context, id string) (*models.SeniorProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.SeniorProfile, error)
	Update(ctx context.Context, profile *models.SeniorProfile) error
}

// FavoriteStore is the repository capability for favorite links.
type FavoriteStore interface {
	ListByUser(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, mentorID string) error
	Remove(ctx context.Context, userID, mentorID string) error
}

// OnboardingStore tracks per-user onboarding-seen flags.
type OnboardingStore interface {
	HasSeen(ctx context.Context, userID string) (bool, error)
	MarkSeen(ctx context.Context, userID string) error
}

// DirectorySource supplies the profile collection for directory listings
// (normally the directory cache; the store directly when caching is off).
type DirectorySource interface {
	GetAll(ctx context.Context) ([]*models.SeniorProfile, error)
}

// DirectoryInvalidator is implemented by sources whose contents must be
// refreshed after a write.
type DirectoryInvalidator interface {
	Invalidate(ctx context.Context)
}
