package models

import (
	"time"
)

// Job is the canonical job listing schema. Every source format (the scraped
// provider feeds and the NDJSON exports) is unified into this one shape before
// it is stored, so the API only ever deals with a single table.
type Job struct {
	// Source-provided identifier. Records that arrive without one get a
	// synthetic "gen-" key assigned during ingestion.
	ID string `gorm:"primaryKey" json:"id"`

	Title          *string  `json:"title"`
	Company        *string  `json:"company"`
	Location       *string  `json:"location"`
	EmploymentType *string  `json:"employment_type"`
	DatePosted     *string  `json:"date_posted"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	SalaryCurrency *string  `json:"salary_currency"`
	IsRemote       bool     `json:"is_remote"`

	// Kept under the legacy column name so older databases stay readable.
	Description *string `gorm:"column:job_description;type:text" json:"description"`

	JobURL *string `json:"job_url"`
	Source string  `json:"source"`
	Email  *string `json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

// UserProfile holds the free-text info a user enters about themselves.
// Name is the unique key: saving under an existing name replaces the
// whole row (upsert, not merge).
type UserProfile struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Email          string `json:"email"`
	Phone          string `json:"phone"`
	GithubLinkedin string `json:"github_linkedin"`
	Projects       string `gorm:"type:text" json:"projects"`
	Classes        string `gorm:"type:text" json:"classes"`
	Other          string `gorm:"type:text" json:"other"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcessedFile is the dedup ledger for the ingest watcher, so a dropped
// file is imported exactly once.
type ProcessedFile struct {
	Name      string `gorm:"primaryKey"`
	CreatedAt time.Time
}
