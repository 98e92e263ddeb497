package investment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/database/migrations"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/services/referral"
	"github.com/primevest/backend/internal/services/settings"
	"github.com/primevest/backend/internal/services/wallet"
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

func newService(db *gorm.DB) *InvestmentService {
	walletSvc := wallet.NewWalletService(db)
	referralSvc := referral.NewReferralService(db, walletSvc, nil, 0)
	settingsSvc := settings.NewSettingsService(db)
	return NewInvestmentService(db, referralSvc, settingsSvc)
}

func createUser(t *testing.T, db *gorm.DB, name string, referredBy *uuid.UUID) *models.User {
	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		ReferralCode: name + "-code",
		ReferredByID: referredBy,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateInvestment_Valid(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := createUser(t, db, "alice", nil)

	inv, err := svc.CreateInvestment(user.ID, 1000, models.PlanStandard)
	require.NoError(t, err)

	assert.Equal(t, models.PlanStandard, inv.Plan)
	assert.Equal(t, 1.0, inv.DailyRoiRate)
	assert.Equal(t, models.InvestmentStatusActive, inv.Status)
	assert.Equal(t, models.InvestmentTermDays, int(inv.EndDate.Sub(inv.StartDate).Hours()/24))
}

func TestCreateInvestment_PlanRates(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := createUser(t, db, "alice", nil)

	tests := []struct {
		plan models.Plan
		rate float64
	}{
		{models.PlanBasic, 0.5},
		{models.PlanStandard, 1.0},
		{models.PlanPremium, 1.5},
	}

	for _, tt := range tests {
		inv, err := svc.CreateInvestment(user.ID, 100, tt.plan)
		require.NoError(t, err)
		assert.Equal(t, tt.rate, inv.DailyRoiRate)
	}
}

func TestCreateInvestment_RejectsUnknownPlan(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := createUser(t, db, "alice", nil)

	_, err := svc.CreateInvestment(user.ID, 1000, models.Plan("platinum"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var count int64
	require.NoError(t, db.Model(&models.Investment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateInvestment_RejectsAmountBelowMinimum(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := createUser(t, db, "alice", nil)

	_, err := svc.CreateInvestment(user.ID, 0.5, models.PlanBasic)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateInvestment_PaysPrincipalCommission(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	parent := createUser(t, db, "parent", nil)
	child := createUser(t, db, "child", &parent.ID)

	inv, err := svc.CreateInvestment(child.ID, 1000, models.PlanStandard)
	require.NoError(t, err)

	// 5% of the $1000 principal at level 1
	var income models.ReferralIncome
	require.NoError(t, db.First(&income, "investment_id = ?", inv.ID).Error)
	assert.Equal(t, parent.ID, income.UserID)
	assert.Equal(t, 50.0, income.Amount)
	assert.Equal(t, 1, income.Level)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", parent.ID).Error)
	assert.Equal(t, 50.0, reloaded.WalletBalance)
}

func TestListByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	alice := createUser(t, db, "alice", nil)
	bob := createUser(t, db, "bob", nil)

	_, err := svc.CreateInvestment(alice.ID, 100, models.PlanBasic)
	require.NoError(t, err)
	_, err = svc.CreateInvestment(alice.ID, 200, models.PlanPremium)
	require.NoError(t, err)
	_, err = svc.CreateInvestment(bob.ID, 300, models.PlanStandard)
	require.NoError(t, err)

	investments, err := svc.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, investments, 2)
}
