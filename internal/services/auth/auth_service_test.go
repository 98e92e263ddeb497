package auth

import (
	"testing"

	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/config"
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

func newService(db *gorm.DB) *AuthService {
	return NewAuthService(db, config.JWTConfig{Secret: "test-secret", Expiration: 1})
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	result, err := svc.Register("Jane Doe", "jane@example.com", "supersecret", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.User.ReferralCode)
	assert.Nil(t, result.User.ReferredByID)

	login, err := svc.Login("jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegister_LinksReferrer(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	parent, err := svc.Register("Parent", "parent@example.com", "supersecret", "")
	require.NoError(t, err)

	child, err := svc.Register("Child", "child@example.com", "supersecret", parent.User.ReferralCode)
	require.NoError(t, err)
	require.NotNil(t, child.User.ReferredByID)
	assert.Equal(t, parent.User.ID, *child.User.ReferredByID)
}

func TestRegister_RejectsInvalidReferralCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.Register("Jane", "jane@example.com", "supersecret", "no-such-code")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.Register("Jane", "jane@example.com", "supersecret", "")
	require.NoError(t, err)

	_, err = svc.Register("Jane Again", "jane@example.com", "supersecret", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestRegister_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.Register("", "jane@example.com", "supersecret", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Register("Jane", "jane@example.com", "short", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.Register("Jane", "jane@example.com", "supersecret", "")
	require.NoError(t, err)

	_, err = svc.Login("jane@example.com", "wrong-password")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))

	_, err = svc.Login("nobody@example.com", "supersecret")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestLogin_RejectsDeactivatedAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	result, err := svc.Register("Jane", "jane@example.com", "supersecret", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", result.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login("jane@example.com", "supersecret")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}
