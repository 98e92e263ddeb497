package wallet

import (
	"testing"

	"github.com/google/uuid"
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

func TestCredit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	user := models.User{
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
		ReferralCode: "alice-code",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, svc.Credit(user.ID, 10.50))
	require.NoError(t, svc.Credit(user.ID, 4.25))

	balance, err := svc.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 14.75, balance)
}

func TestCredit_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	err := svc.Credit(uuid.New(), 10)
	assert.Error(t, err)
}
