package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// ViewHandler answers which screen the client should render
type ViewHandler struct {
	views *services.ViewService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(views *services.ViewService) *ViewHandler {
	return &ViewHandler{
		views: views,
	}
}

// Get handles GET /api/view
// Resolves the view for the caller; an absent or invalid session resolves
// to the unauthenticated view rather than an error.
func (h *ViewHandler) Get(c *gin.Context) {
	session, _ := middleware.GetUserSession(c)

	view, err := h.views.Resolve(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve view", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

type onboardingRequest struct {
	Role string `json:"role" binding:"required,oneof=junior senior"`
}

// CompleteOnboarding handles POST /api/view/onboarding
// Records the role picked in the onboarding modal and returns the next view.
func (h *ViewHandler) CompleteOnboarding(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			ParseValidationErrors(err), err)
		return
	}

	view, err := h.views.CompleteOnboarding(c.Request.Context(), session.UserID, req.Role)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) || apperrors.Is(err, models.ErrInvalidTransition) {
			respondError(c, http.StatusBadRequest, "Invalid onboarding role", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to complete onboarding", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}
