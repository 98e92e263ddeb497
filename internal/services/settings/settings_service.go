package settings

import (
	"errors"
	"fmt"

	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/models"
	"gorm.io/gorm"
)

// SettingsService manages the referral level configuration
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new settings service
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetLevelConfig returns the active commission rate table, falling back to
// the built-in default when no active configuration exists
func (s *SettingsService) GetLevelConfig() (models.LevelEntries, error) {
	var setting models.LevelSetting
	err := s.db.Where("key = ? AND is_active = ?", models.LevelSettingKey, true).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultLevelConfig, nil
		}
		return nil, fmt.Errorf("error loading level config: %w", err)
	}
	if len(setting.Levels) == 0 {
		return models.DefaultLevelConfig, nil
	}
	return setting.Levels, nil
}

// SetLevelConfig validates and replaces the active commission rate table
func (s *SettingsService) SetLevelConfig(entries models.LevelEntries, updatedBy string) (*models.LevelSetting, error) {
	if err := validateLevels(entries); err != nil {
		return nil, err
	}

	var setting models.LevelSetting
	err := s.db.Where("key = ?", models.LevelSettingKey).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error loading level config: %w", err)
		}
		setting = models.LevelSetting{
			Key:       models.LevelSettingKey,
			Levels:    entries,
			IsActive:  true,
			UpdatedBy: updatedBy,
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("error creating level config: %w", err)
		}
		return &setting, nil
	}

	setting.Levels = entries
	setting.IsActive = true
	setting.UpdatedBy = updatedBy
	if err := s.db.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("error updating level config: %w", err)
	}
	return &setting, nil
}

func validateLevels(entries models.LevelEntries) error {
	if len(entries) == 0 {
		return apperrors.Validation("at least one level entry is required")
	}
	for i, entry := range entries {
		if entry.Level != i+1 {
			return apperrors.Validation("levels must start at 1 and increase by 1")
		}
		if entry.Percentage < 0 {
			return apperrors.Validation("percentage cannot be negative")
		}
	}
	return nil
}
