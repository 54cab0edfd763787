package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobfolio/jobhub/internal/dtos"
	"github.com/jobfolio/jobhub/internal/models"
	"github.com/jobfolio/jobhub/internal/services"
)

type ResumeHandler struct {
	LLMService     *services.LLMService
	JobService     *services.JobService
	ProfileService *services.ProfileService
}

func NewResumeHandler(llm *services.LLMService, j *services.JobService, p *services.ProfileService) *ResumeHandler {
	return &ResumeHandler{LLMService: llm, JobService: j, ProfileService: p}
}

// CreateResume is the POST /resumes endpoint: draft a markdown resume for a
// stored job against a saved profile.
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	h.generate(c, h.LLMService.CreateResume)
}

// CreateCoverLetter is the POST /cover-letters endpoint.
func (h *ResumeHandler) CreateCoverLetter(c *gin.Context) {
	h.generate(c, h.LLMService.CreateCoverLetter)
}

func (h *ResumeHandler) generate(c *gin.Context, gen func(context.Context, *models.Job, *models.UserProfile) (string, error)) {
	var req dtos.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.GetJob(req.JobID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.ProfileService.GetProfile(req.ProfileName)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	output, err := gen(c.Request.Context(), job, profile)
	if errors.Is(err, services.ErrLLMDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":   job.ID,
		"profile":  profile.Name,
		"markdown": output,
	})
}
