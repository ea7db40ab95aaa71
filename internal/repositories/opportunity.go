package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"seekr/backend/internal/models"
)

type OpportunityRepository interface {
	List() ([]models.Opportunity, error)
	FindByID(id string) (*models.Opportunity, error)
	SeedIfEmpty(opportunities []models.Opportunity) error
}

type opportunityRepository struct {
	db *gorm.DB
}

// List implements OpportunityRepository.
func (o *opportunityRepository) List() ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	if err := o.db.Order("id").Find(&opportunities).Error; err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return opportunities, nil
}

// FindByID implements OpportunityRepository.
func (o *opportunityRepository) FindByID(id string) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := o.db.Where("id = ?", id).First(&opportunity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("opportunity not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	return &opportunity, nil
}

// SeedIfEmpty implements OpportunityRepository. It inserts the given
// opportunities only when the table has no rows yet.
func (o *opportunityRepository) SeedIfEmpty(opportunities []models.Opportunity) error {
	var count int64
	if err := o.db.Model(&models.Opportunity{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count opportunities: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := o.db.Create(&opportunities).Error; err != nil {
		return fmt.Errorf("failed to seed opportunities: %w", err)
	}

	return nil
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}
