package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobfolio/jobhub/internal/dtos"
	"github.com/jobfolio/jobhub/internal/ingest"
	"github.com/jobfolio/jobhub/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ImportJobs is the POST /jobs/import endpoint. It runs the ingestion
// pipeline over a listings file on disk and reports how many records were
// extracted (not how many were new — duplicates are silently skipped by the
// store).
func (h *JobHandler) ImportJobs(c *gin.Context) {
	var req dtos.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	jobs, err := ingest.ImportFile(req.FilePath, req.Source, h.JobService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed: " + err.Error()})
		return
	}

	stored, err := h.JobService.CountJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"extracted":    len(jobs),
		"total_stored": stored,
	})
}

// ListJobs is the GET /jobs endpoint, returning the (id, title, company,
// location) tuples the listings table renders. ?q= narrows by keyword.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// GetJob is the GET /jobs/:id endpoint, returning the full stored record.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetJob(c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}
