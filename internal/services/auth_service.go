package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/config"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
	"github.com/seniorconnect/seniorconnect-api/pkg/jwt"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
)

// identityNamespace is the fixed UUIDv5 namespace for deriving user ids from
// emails. The derivation is deterministic (the same email always yields the
// same id) and one-way, so the id carries no recoverable PII.
var identityNamespace = uuid.MustParse("8f7a1f6e-52c4-4f8b-9d4e-2a96c01b5a37")

// DomainRejectionError is the structured failure returned when a login email
// falls outside the domain allow-list.
type DomainRejectionError struct {
	AllowedDomains []string
}

func (e *DomainRejectionError) Error() string {
	return fmt.Sprintf("only %s emails are allowed", strings.Join(e.AllowedDomains, " or "))
}

func (e *DomainRejectionError) Unwrap() error {
	return apperrors.ErrEmailDomainNotAllowed
}

// AuthService gates logins on the email domain allow-list and issues session
// tokens.
type AuthService struct {
	allowedDomains []string
	tokenManager   *jwt.TokenManager
}

// NewAuthService creates an auth service from config.
func NewAuthService(cfg *config.Config, tokenManager *jwt.TokenManager) *AuthService {
	domains := make([]string, 0, len(cfg.Auth.AllowedEmailDomains))
	for _, d := range cfg.Auth.AllowedEmailDomains {
		domains = append(domains, strings.ToLower(d))
	}
	return &AuthService{
		allowedDomains: domains,
		tokenManager:   tokenManager,
	}
}

// AllowedDomains returns the configured allow-list.
func (s *AuthService) AllowedDomains() []string {
	return s.allowedDomains
}

// ValidateEmailDomain reports whether email ends with an allow-listed
// suffix. Comparison is case-insensitive.
func (s *AuthService) ValidateEmailDomain(email string) bool {
	lower := strings.ToLower(email)
	for _, domain := range s.allowedDomains {
		if strings.HasSuffix(lower, domain) {
			return true
		}
	}
	return false
}

// Login validates the email against the allow-list and, on success, derives
// the session identity and signs a session token. Rejections come back as a
// *DomainRejectionError naming the permitted domains, never as a panic or
// unhandled fault.
func (s *AuthService) Login(email string) (*models.UserSession, string, error) {
	if !s.ValidateEmailDomain(email) {
		metrics.LoginAttempts.WithLabelValues("rejected_domain").Inc()
		return nil, "", &DomainRejectionError{AllowedDomains: s.allowedDomains}
	}

	userID := DeriveUserID(email)
	name := displayName(email)

	token, err := s.tokenManager.GenerateToken(userID, email, name)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	now := time.Now()
	session := &models.UserSession{
		UserID:    userID,
		Email:     email,
		Name:      name,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenManager.GetExpirationTime()).Unix(),
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info("User logged in", zap.String("user_id", userID))

	return session, token, nil
}

// DeriveUserID maps an email to its deterministic opaque user id.
func DeriveUserID(email string) string {
	return uuid.NewSHA1(identityNamespace, []byte(strings.ToLower(email))).String()
}

// displayName is the local part of the email, before '@'.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
