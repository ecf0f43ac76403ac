package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seniorconnect/seniorconnect-api/internal/directory"
	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	apperrors "github.com/seniorconnect/seniorconnect-api/pkg/errors"
)

// MentorHandler serves the mentor directory endpoints
type MentorHandler struct {
	directory *services.DirectoryService
}

// NewMentorHandler creates a new MentorHandler
func NewMentorHandler(directoryService *services.DirectoryService) *MentorHandler {
	return &MentorHandler{
		directory: directoryService,
	}
}

// List handles GET /api/mentors
// Query params: domain, help_types (comma-separated), availability,
// favorites_only. Omitted params are no-ops; filters combine with AND.
func (h *MentorHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	cfg := parseDirectoryConfig(c)

	mentors, err := h.directory.List(c.Request.Context(), session.UserID, cfg)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load mentors", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mentors": mentors,
		"count":   len(mentors),
	})
}

// GetByID handles GET /api/mentors/:id
func (h *MentorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	mentor, err := h.directory.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Mentor not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load mentor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentor": mentor})
}

// parseDirectoryConfig maps query params onto a directory filter config.
// The sentinel values ("All Domains", availability "all") and empty params
// mean no filtering on that dimension.
func parseDirectoryConfig(c *gin.Context) directory.Config {
	cfg := directory.Config{}

	if domain := strings.TrimSpace(c.Query("domain")); domain != "" && domain != directory.AllDomains {
		cfg.Domain = domain
	}

	if raw := strings.TrimSpace(c.Query("help_types")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.HelpTypes = append(cfg.HelpTypes, t)
			}
		}
	}

	if availability := strings.TrimSpace(c.Query("availability")); availability != "" && availability != directory.AnyAvailability {
		cfg.Availability = models.AvailabilityStatus(availability)
	}

	cfg.FavoritesOnly = c.Query("favorites_only") == "true"

	return cfg
}
