package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tidylist/internal/models"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{db: db}
}

// Create inserts the user's settings row, generating an id when none is set.
func (r *GORMSettingsRepository) Create(settings *models.UserSettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	if err := r.db.Create(settings).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user settings: %w", err)
	}
	return nil
}

// GetByUserID retrieves the user's settings row, (nil, nil) when absent.
func (r *GORMSettingsRepository) GetByUserID(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}

// Update saves the full settings record.
func (r *GORMSettingsRepository) Update(settings *models.UserSettings) error {
	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	return nil
}
