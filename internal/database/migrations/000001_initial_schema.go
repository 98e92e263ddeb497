package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/primevest/backend/internal/models"
	"gorm.io/gorm"
)

// CreateInitialSchema creates the users, investments, roi_histories,
// referral_incomes and level_settings tables
func CreateInitialSchema() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000001_initial_schema",
		Migrate: func(tx *gorm.DB) error {
			return AutoMigrate(tx)
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(
				&models.ReferralIncome{},
				&models.RoiHistory{},
				&models.Investment{},
				&models.LevelSetting{},
				&models.User{},
			)
		},
	}
}

// SeedLevelSettings inserts the default commission rate table so a fresh
// deployment distributes with the built-in levels until an admin changes them
func SeedLevelSettings() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000002_seed_level_settings",
		Migrate: func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.LevelSetting{}).
				Where("key = ?", models.LevelSettingKey).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
			setting := models.LevelSetting{
				Key:       models.LevelSettingKey,
				Levels:    models.DefaultLevelConfig,
				IsActive:  true,
				UpdatedBy: "system",
			}
			return tx.Create(&setting).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Where("key = ?", models.LevelSettingKey).
				Delete(&models.LevelSetting{}).Error
		},
	}
}
