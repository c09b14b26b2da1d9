package repository

import (
	"github.com/openvoice/openvoice-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository profile data access interface
type ProfileRepository interface {
	Create(profile *domain.Profile) error
	FindByID(id string) (*domain.Profile, error)
	FindByUsername(username string) (*domain.Profile, error)
	Update(id string, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a profile (called when the identity provider provisions one)
func (r *profileRepository) Create(profile *domain.Profile) error {
	return r.db.Create(profile).Error
}

// FindByID returns a profile by its identity id
func (r *profileRepository) FindByID(id string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUsername returns a profile by its unique username
func (r *profileRepository) FindByUsername(username string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the given column set to a profile
func (r *profileRepository) Update(id string, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Profile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
