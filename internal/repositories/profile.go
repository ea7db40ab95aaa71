package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seekr/backend/internal/models"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id uuid.UUID) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// Create implements ProfileRepository.
func (p *profileRepository) Create(profile *models.Profile) error {
	if err := p.db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// FindByID implements ProfileRepository.
func (p *profileRepository) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := p.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}

// Update implements ProfileRepository.
func (p *profileRepository) Update(profile *models.Profile) error {
	if err := p.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}
