package services

import (
	"errors"
	"fmt"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
)

// UserService handles per-user settings. A user has at most one settings row,
// materialized lazily by the first write.
type UserService struct {
	settingsRepo repositories.SettingsRepository
}

// NewUserService creates a new UserService.
func NewUserService(settingsRepo repositories.SettingsRepository) *UserService {
	return &UserService{settingsRepo: settingsRepo}
}

// UpsertSettingsInput carries a settings write.
type UpsertSettingsInput struct {
	UserID   string
	DarkMode bool
}

// GetSettings returns the user's settings row.
func (s *UserService) GetSettings(userID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to get user settings", err)
	}
	if settings == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("user settings not found for user: %s", userID))
	}
	return settings, nil
}

// UpsertSettings updates the user's settings row, creating it on first write.
// Repeated upserts keep the same row id. A create that loses the race against
// a concurrent first write falls back to updating the row that won.
func (s *UserService) UpsertSettings(input UpsertSettingsInput) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(input.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to get user settings", err)
	}

	if settings == nil {
		settings = &models.UserSettings{
			UserID:   input.UserID,
			DarkMode: input.DarkMode,
		}
		err := s.settingsRepo.Create(settings)
		if err == nil {
			return settings, nil
		}
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Internal("failed to create user settings", err)
		}
		settings, err = s.settingsRepo.GetByUserID(input.UserID)
		if err != nil || settings == nil {
			return nil, apperrors.Internal("failed to get user settings", err)
		}
	}

	settings.DarkMode = input.DarkMode
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, apperrors.Internal("failed to update user settings", err)
	}
	return settings, nil
}
