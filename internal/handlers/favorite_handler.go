package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// FavoriteHandler manages the caller's favorite mentors
type FavoriteHandler struct {
	favorites *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
	}
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	ids, err := h.favorites.List(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}

	c.JSON(http.StatusOK, models.FavoritesResponse{MentorIDs: ids})
}

// Add handles PUT /api/favorites/:mentorId
// Adding an already-favorited mentor succeeds without effect.
func (h *FavoriteHandler) Add(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	mentorID := c.Param("mentorId")
	if err := h.favorites.Add(c.Request.Context(), session.UserID, mentorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Mentor not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to add favorite", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Remove handles DELETE /api/favorites/:mentorId
// Removing an absent favorite succeeds without effect.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	mentorID := c.Param("mentorId")
	if err := h.favorites.Remove(c.Request.Context(), session.UserID, mentorID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove favorite", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
