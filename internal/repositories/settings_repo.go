package repositories

import "tidylist/internal/models"

// SettingsRepository defines the interface for user-settings data access.
// There is at most one row per user; GetByUserID returns (nil, nil) when the
// row has not been materialized yet.
type SettingsRepository interface {
	Create(settings *models.UserSettings) error
	GetByUserID(userID string) (*models.UserSettings, error)
	Update(settings *models.UserSettings) error
}
