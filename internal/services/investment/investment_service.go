package investment

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/services/referral"
	"github.com/primevest/backend/internal/services/settings"
	"gorm.io/gorm"
)

// InvestmentService creates and reads investments
type InvestmentService struct {
	db          *gorm.DB
	referralSvc *referral.ReferralService
	settingsSvc *settings.SettingsService
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(db *gorm.DB, referralSvc *referral.ReferralService, settingsSvc *settings.SettingsService) *InvestmentService {
	return &InvestmentService{
		db:          db,
		referralSvc: referralSvc,
		settingsSvc: settingsSvc,
	}
}

// CreateInvestment validates and persists a new investment, then pays the
// one-time principal-based commission to the investor's upline. That payout
// lands in the same (investment, beneficiary) rows the daily cycle will keep
// incrementing over the investment's life.
func (s *InvestmentService) CreateInvestment(userID uuid.UUID, amount float64, plan models.Plan) (*models.Investment, error) {
	rate, ok := models.PlanDailyRate[plan]
	if !ok {
		return nil, apperrors.Validation("plan must be one of: basic, standard, premium")
	}
	if amount < models.MinInvestmentAmount {
		return nil, apperrors.Validation(fmt.Sprintf("amount must be at least %.0f", models.MinInvestmentAmount))
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("error finding user %s: %w", userID, err)
	}

	startDate := time.Now().UTC()
	investment := models.Investment{
		UserID:       userID,
		Amount:       amount,
		Plan:         plan,
		DailyRoiRate: rate,
		StartDate:    startDate,
		EndDate:      startDate.AddDate(0, 0, models.InvestmentTermDays),
		Status:       models.InvestmentStatusActive,
	}
	if err := s.db.Create(&investment).Error; err != nil {
		return nil, fmt.Errorf("error creating investment: %w", err)
	}

	// The investment stands even when the commission payout fails; the
	// missing income surfaces in reconciliation rather than failing the
	// deposit, and the upsert makes the payout safe to repeat.
	levels, err := s.settingsSvc.GetLevelConfig()
	if err != nil {
		log.Printf("Failed to load level config for investment %s: %v", investment.ID, err)
		return &investment, nil
	}
	if _, err := s.referralSvc.Distribute(userID, investment.ID, amount, levels); err != nil {
		log.Printf("Failed to distribute referral income for investment %s: %v", investment.ID, err)
	}

	return &investment, nil
}

// ListByUser returns a user's investments, newest first
func (s *InvestmentService) ListByUser(userID uuid.UUID) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("error finding investments: %w", err)
	}
	return investments, nil
}
