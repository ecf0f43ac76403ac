package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
	"github.com/seniorconnect/seniorconnect-api/pkg/jwt"
)

func newAuthService() *services.AuthService {
	cfg := &config.Config{}
	cfg.Auth.AllowedEmailDomains = []string{"@uem.edu.in", "@iem.edu.in"}
	tm := jwt.NewTokenManager("test-secret-at-least-32-bytes-long!", "seniorconnect-test", 24)
	return services.NewAuthService(cfg, tm)
}

func TestAuthService_ValidateEmailDomain(t *testing.T) {
	svc := newAuthService()

	tests := []struct {
		email   string
		allowed bool
	}{
		{"student@uem.edu.in", true},
		{"student@iem.edu.in", true},
		{"Student@UEM.EDU.IN", true}, // case-insensitive
		{"student@gmail.com", false},
		{"student@uem.edu.in.attacker.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, svc.ValidateEmailDomain(tt.email), tt.email)
	}
}

func TestAuthService_LoginAllowed(t *testing.T) {
	svc := newAuthService()

	session, token, err := svc.Login("priya@uem.edu.in")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, token)
	assert.Equal(t, "priya@uem.edu.in", session.Email)
	assert.Equal(t, "priya", session.Name)
	assert.NotEmpty(t, session.UserID)
	assert.Greater(t, session.ExpiresAt, session.IssuedAt)
}

func TestAuthService_LoginRejectedNamesAllowedDomains(t *testing.T) {
	svc := newAuthService()

	session, token, err := svc.Login("outsider@gmail.com")
	assert.Nil(t, session)
	assert.Empty(t, token)
	require.Error(t, err)

	var rejection *services.DomainRejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, []string{"@uem.edu.in", "@iem.edu.in"}, rejection.AllowedDomains)
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailDomainNotAllowed))
}

func TestDeriveUserID_DeterministicAndCaseInsensitive(t *testing.T) {
	a := services.DeriveUserID("priya@uem.edu.in")
	b := services.DeriveUserID("PRIYA@UEM.EDU.IN")
	c := services.DeriveUserID("rahul@uem.edu.in")

	assert.Equal(t, a, b, "same email must derive the same id regardless of case")
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "@", "derived id must not embed the email")
}

func TestAuthService_SessionTokenRoundTrip(t *testing.T) {
	svc := newAuthService()
	tm := jwt.NewTokenManager("test-secret-at-least-32-bytes-long!", "seniorconnect-test", 24)

	session, token, err := svc.Login("priya@uem.edu.in")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, claims.UserID)
	assert.Equal(t, session.Email, claims.Email)
	assert.Equal(t, session.Name, claims.Name)
}
