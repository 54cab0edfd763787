package dtos

// ImportRequest triggers an import of a newline-delimited JSON listings file
// that is already on disk next to the server.
type ImportRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Source   string `json:"source" binding:"required"`
}

// ProfileRequest carries the full user profile form. Name is the upsert key;
// every other field is free text.
type ProfileRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	GithubLinkedin string `json:"github_linkedin"`
	Projects       string `json:"projects"`
	Classes        string `json:"classes"`
	Other          string `json:"other"`
}

// GenerationRequest asks for a resume or cover letter for one stored job,
// written against one saved profile.
type GenerationRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	ProfileName string `json:"profile_name" binding:"required"`
}
