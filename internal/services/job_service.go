package services

import (
	"errors"

	"github.com/jobfolio/jobhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// InsertJobIfAbsent inserts the job unless a row with the same id already
// exists, in which case nothing happens — the existing row is never touched.
// This is what makes re-running an import over the same file safe.
func (s *JobService) InsertJobIfAbsent(job *models.Job) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(job).Error
}

// JobSummary is the tuple the listings view renders per row.
type JobSummary struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
}

// ListJobs returns summaries of all stored jobs, optionally narrowed by a
// case-insensitive keyword match against title, company or location.
func (s *JobService) ListJobs(query string) ([]JobSummary, error) {
	q := s.DB.Model(&models.Job{}).Order("created_at DESC")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title LIKE ? OR company LIKE ? OR location LIKE ?", like, like, like)
	}

	var summaries []JobSummary
	if err := q.Find(&summaries).Error; err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []JobSummary{}
	}
	return summaries, nil
}

// GetJob returns the full record for one listing.
func (s *JobService) GetJob(id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CountJobs reports how many rows the jobs table holds.
func (s *JobService) CountJobs() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Job{}).Count(&n).Error
	return n, err
}
