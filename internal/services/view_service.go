package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
)

// ViewService resolves which screen a session should see from persisted
// profile and onboarding state.
type ViewService struct {
	profiles   ProfileStore
	onboarding OnboardingStore
}

// NewViewService creates a view service.
func NewViewService(profiles ProfileStore, onboarding OnboardingStore) *ViewService {
	return &ViewService{
		profiles:   profiles,
		onboarding: onboarding,
	}
}

// Resolve returns the current view for the session. A nil session resolves
// to the login screen.
func (s *ViewService) Resolve(ctx context.Context, session *models.UserSession) (models.ViewState, error) {
	if session == nil {
		return models.ViewUnauthenticated, nil
	}

	hasProfile, err := s.hasProfile(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	seen, err := s.onboarding.HasSeen(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	return models.ResolveView(true, hasProfile, seen), nil
}

// CompleteOnboarding records the user's role choice from the onboarding
// modal and returns the view that follows it: juniors land on the directory,
// seniors land on the registration form. Either way the modal never shows
// again for this user.
func (s *ViewService) CompleteOnboarding(ctx context.Context, userID, role string) (models.ViewState, error) {
	var event models.ViewEvent
	switch role {
	case "junior":
		event = models.EventOnboardingJunior
	case "senior":
		event = models.EventOnboardingSenior
	default:
		return "", apperrors.InvalidInputError("role", "must be junior or senior")
	}

	if err := s.onboarding.MarkSeen(ctx, userID); err != nil {
		return "", err
	}

	next, err := models.Transition(models.ViewOnboarding, event)
	if err != nil {
		return "", err
	}

	logger.Debug("Onboarding completed",
		zap.String("user_id", userID),
		zap.String("role", role))
	return next, nil
}

func (s *ViewService) hasProfile(ctx context.Context, userID string) (bool, error) {
	_, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return true, nil
	}
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}
