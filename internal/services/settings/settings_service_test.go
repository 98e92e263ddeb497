package settings

import (
	"testing"

	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/database/migrations"
	"github.com/primevest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestGetLevelConfig_DefaultWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	levels, err := svc.GetLevelConfig()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLevelConfig, levels)
}

func TestSetLevelConfig_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	custom := models.LevelEntries{
		{Level: 1, Percentage: 10},
		{Level: 2, Percentage: 5},
	}
	setting, err := svc.SetLevelConfig(custom, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", setting.UpdatedBy)

	levels, err := svc.GetLevelConfig()
	require.NoError(t, err)
	assert.Equal(t, custom, levels)
}

func TestSetLevelConfig_ReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.SetLevelConfig(models.LevelEntries{{Level: 1, Percentage: 10}}, "first")
	require.NoError(t, err)
	_, err = svc.SetLevelConfig(models.LevelEntries{{Level: 1, Percentage: 7}}, "second")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.LevelSetting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	levels, err := svc.GetLevelConfig()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, 7.0, levels[0].Percentage)
}

func TestSetLevelConfig_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	tests := []struct {
		name    string
		entries models.LevelEntries
	}{
		{"empty", models.LevelEntries{}},
		{"does not start at 1", models.LevelEntries{{Level: 2, Percentage: 5}}},
		{"gap in levels", models.LevelEntries{{Level: 1, Percentage: 5}, {Level: 3, Percentage: 1}}},
		{"negative percentage", models.LevelEntries{{Level: 1, Percentage: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetLevelConfig(tt.entries, "admin")
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}
