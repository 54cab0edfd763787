package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobfolio/jobhub/internal/dtos"
	"github.com/jobfolio/jobhub/internal/models"
	"github.com/jobfolio/jobhub/internal/services"
)

type ProfileHandler struct {
	ProfileService *services.ProfileService
}

func NewProfileHandler(p *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{ProfileService: p}
}

// SaveProfile is the PUT /profiles endpoint. Saving under an existing name
// replaces that profile in full.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	profile := models.UserProfile{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		GithubLinkedin: req.GithubLinkedin,
		Projects:       req.Projects,
		Classes:        req.Classes,
		Other:          req.Other,
	}
	if err := h.ProfileService.SaveProfile(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": profile.Name, "message": "Profile saved"})
}

// ListProfiles is the GET /profiles endpoint (names only, for the dropdown).
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	names, err := h.ProfileService.ListProfileNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": names})
}

// GetProfile is the GET /profiles/:name endpoint.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.ProfileService.GetProfile(c.Param("name"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
