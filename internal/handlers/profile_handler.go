package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
)

// ProfileHandler serves the caller's own mentor profile
type ProfileHandler struct {
	registration *services.RegistrationService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(registration *services.RegistrationService) *ProfileHandler {
	return &ProfileHandler{
		registration: registration,
	}
}

// GetOwn handles GET /api/profile
// Absence of a profile is a normal outcome for juniors, so a miss responds
// 200 with a null profile rather than 404.
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	profile, err := h.registration.OwnProfile(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
