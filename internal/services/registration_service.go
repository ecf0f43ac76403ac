package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
)

// RegistrationService handles mentor profile registration.
type RegistrationService struct {
	profiles  ProfileStore
	directory DirectoryInvalidator
}

// NewRegistrationService creates a registration service.
func NewRegistrationService(profiles ProfileStore, directory DirectoryInvalidator) *RegistrationService {
	return &RegistrationService{
		profiles:  profiles,
		directory: directory,
	}
}

// Register creates the caller's mentor profile. The priority score is
// computed here, once, from the submitted status attributes; the stored value
// is a snapshot and is never re-derived afterwards. The bio is truncated to
// the cap rather than rejected. A second profile for the same user is
// reported as a duplicate failure, not an overwrite.
func (s *RegistrationService) Register(ctx context.Context, session *models.UserSession, req *models.RegisterSeniorRequest) (*models.RegisterSeniorResponse, error) {
	placement := models.PlacementStatus(req.PlacementStatus)
	internship := models.InternshipStatus(req.InternshipStatus)
	project := models.ProjectExperience(req.ProjectExperience)
	availability := models.AvailabilityStatus(req.AvailabilityStatus)

	profile := &models.SeniorProfile{
		UserID:             session.UserID,
		Name:               req.Name,
		Email:              session.Email,
		PrimaryDomain:      req.PrimaryDomain,
		SecondaryDomain:    req.SecondaryDomain,
		LinkedinURL:        req.LinkedinURL,
		PlacementStatus:    placement,
		InternshipStatus:   internship,
		ProjectExperience:  project,
		AvailabilityStatus: availability,
		MentorIntent:       req.MentorIntent,
		Bio:                models.TruncateBio(req.Bio),
		PriorityScore:      models.CalculatePriorityScore(placement, internship, project, availability),
	}

	stored, err := s.profiles.Append(ctx, profile)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.MentorRegistrations.WithLabelValues("duplicate").Inc()
			return &models.RegisterSeniorResponse{
				Success: false,
				Error:   "You have already registered a mentor profile",
			}, err
		}

		metrics.MentorRegistrations.WithLabelValues("store_error").Inc()
		logger.Error("Failed to store mentor profile",
			zap.Error(err),
			zap.String("user_id", session.UserID))
		return nil, err
	}

	if s.directory != nil {
		s.directory.Invalidate(ctx)
	}

	metrics.MentorRegistrations.WithLabelValues("success").Inc()
	logger.Info("Mentor profile registered",
		zap.String("profile_id", stored.ID),
		zap.String("user_id", stored.UserID),
		zap.Int("priority_score", stored.PriorityScore))

	return &models.RegisterSeniorResponse{
		Success: true,
		Profile: stored,
	}, nil
}

// OwnProfile returns the caller's mentor profile, or nil when the user never
// registered. Absence is a normal outcome, not an error.
func (s *RegistrationService) OwnProfile(ctx context.Context, userID string) (*models.SeniorProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
