package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// RegistrationHandler handles mentor profile registration
type RegistrationHandler struct {
	registration *services.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registration *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registration: registration,
	}
}

// Register handles POST /api/register-mentor
// Creates the caller's mentor profile. A second registration for the same
// user is rejected with 409.
func (h *RegistrationHandler) Register(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.RegisterSeniorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			ParseValidationErrors(err), err)
		return
	}

	resp, err := h.registration.Register(c.Request.Context(), session, &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			attachError(c, err)
			c.JSON(http.StatusConflict, resp)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to register mentor profile", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
