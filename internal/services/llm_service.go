package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jobfolio/jobhub/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrLLMDisabled is returned when generation is requested but no API key was
// configured at startup.
var ErrLLMDisabled = errors.New("llm service is disabled (no GEMINI_API_KEY)")

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. A missing API key disables the
// service instead of killing the process, so ingestion-only deployments still
// work — the resume endpoints will report the service as unavailable.
func NewLLMService(apiKey, model string) *LLMService {
	if apiKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set. Resume generation disabled.")
		return &LLMService{}
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		log.Println("⚠️ Failed to create Gemini client:", err)
		return &LLMService{}
	}

	return &LLMService{Client: llm}
}

// Enabled reports whether a Gemini client is available.
func (s *LLMService) Enabled() bool {
	return s.Client != nil
}

const resumePrompt = `You are a professional resume writer. Create a sample resume in
markdown format tailored to the job and candidate below.

### JOB:
Title: %s
Company: %s
Location: %s

Description:
%s

### CANDIDATE:
%s

Format the resume in a structured, professional way. Output markdown only,
without wrapping it in a code block.`

const coverLetterPrompt = `You are a professional career coach. Write a concise,
personalized cover letter in markdown format for the job and candidate below.
Keep it under 350 words and do not invent experience the candidate does not have.

### JOB:
Title: %s
Company: %s
Location: %s

Description:
%s

### CANDIDATE:
%s

Output markdown only, without wrapping it in a code block.`

// CreateResume drafts a markdown resume for the given job using the saved
// profile as the candidate background.
func (s *LLMService) CreateResume(ctx context.Context, job *models.Job, profile *models.UserProfile) (string, error) {
	return s.generate(ctx, resumePrompt, job, profile)
}

// CreateCoverLetter drafts a markdown cover letter for the given job.
func (s *LLMService) CreateCoverLetter(ctx context.Context, job *models.Job, profile *models.UserProfile) (string, error) {
	return s.generate(ctx, coverLetterPrompt, job, profile)
}

func (s *LLMService) generate(ctx context.Context, template string, job *models.Job, profile *models.UserProfile) (string, error) {
	if !s.Enabled() {
		return "", ErrLLMDisabled
	}

	prompt := fmt.Sprintf(template,
		orEmpty(job.Title), orEmpty(job.Company), orEmpty(job.Location),
		orEmpty(job.Description), profileText(profile))

	var resp string
	err := retry(3, 2*time.Second, func() error {
		var e error
		resp, e = llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
		return e
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return resp, nil
}

// profileText flattens the saved profile into the candidate block of the
// prompt. Empty sections are included as-is; the model handles gaps fine.
func profileText(p *models.UserProfile) string {
	return fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nGitHub/LinkedIn: %s\n\nProjects:\n%s\n\nRelevant Classes:\n%s\n\nOther:\n%s",
		p.Name, p.Email, p.Phone, p.GithubLinkedin, p.Projects, p.Classes, p.Other)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// retry executes f with exponential backoff. Gemini throws transient 429/500s
// under load; three attempts covers the common case.
func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		log.Printf("⚠️ LLM error: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}
