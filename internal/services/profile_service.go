package services

import (
	"errors"

	"github.com/jobfolio/jobhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// SaveProfile creates the profile, or replaces it in full when one with the
// same name exists. Name is the user-facing key; the form always submits the
// complete profile, so a save overwrites every field rather than merging.
func (s *ProfileService) SaveProfile(p *models.UserProfile) error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "phone", "github_linkedin", "projects", "classes", "other", "updated_at",
		}),
	}).Create(p).Error
}

// ListProfileNames returns the saved profile names for the picker dropdown.
func (s *ProfileService) ListProfileNames() ([]string, error) {
	var names []string
	err := s.DB.Model(&models.UserProfile{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// GetProfile loads one profile by name.
func (s *ProfileService) GetProfile(name string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.DB.First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
