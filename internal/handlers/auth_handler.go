package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth       *services.AuthService
	views      *services.ViewService
	ttlSeconds int
	domain     string
	secure     bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService, views *services.ViewService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		views:      views,
		ttlSeconds: cfg.Session.SessionTTLHours * 3600,
		domain:     cfg.Session.CookieDomain,
		secure:     cfg.Session.CookieSecure,
	}
}

// Login handles POST /api/auth/login
// Validates the email against the domain allow-list and creates a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			ParseValidationErrors(err), err)
		return
	}

	session, token, err := h.auth.Login(req.Email)
	if err != nil {
		var rejection *services.DomainRejectionError
		if errors.As(err, &rejection) {
			c.JSON(http.StatusUnauthorized, models.LoginResponse{
				Success:        false,
				Error:          rejection.Error(),
				AllowedDomains: rejection.AllowedDomains,
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to sign in", err)
		return
	}

	view, err := h.views.Resolve(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to sign in", err)
		return
	}

	middleware.SetSessionCookie(c, token, h.ttlSeconds, h.domain, h.secure)

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		User:    session,
		View:    view,
	})
}

// Logout handles POST /api/auth/logout
// Clears the session cookie; the account and its data survive.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.domain, h.secure)

	c.JSON(http.StatusOK, models.LogoutResponse{
		Success: true,
	})
}

// Session handles GET /api/auth/session
// Returns the authenticated user for the current session cookie.
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": session})
}
