package dashboard

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/money"
	"github.com/primevest/backend/internal/services/referral"
	"gorm.io/gorm"
)

const recentEntriesLimit = 10

// DashboardService assembles the read-side account overview
type DashboardService struct {
	db          *gorm.DB
	referralSvc *referral.ReferralService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, referralSvc *referral.ReferralService) *DashboardService {
	return &DashboardService{db: db, referralSvc: referralSvc}
}

// Summary holds the headline account figures
type Summary struct {
	WalletBalance       float64 `json:"wallet_balance"`
	TotalInvested       float64 `json:"total_invested"`
	ActiveInvestments   int     `json:"active_investments_count"`
	TotalInvestments    int     `json:"total_investments_count"`
	TotalRoiEarned      float64 `json:"total_roi_earned"`
	TotalRoiPayments    int64   `json:"total_roi_payments"`
	TotalReferralIncome float64 `json:"total_referral_income"`
	TotalIncome         float64 `json:"total_income"`
}

// Data is the full dashboard payload
type Data struct {
	Summary         Summary                      `json:"summary"`
	Investments     []models.Investment          `json:"investments"`
	LevelIncome     []referral.LevelSummaryEntry `json:"level_income"`
	RecentRoi       []models.RoiHistory          `json:"recent_roi"`
	RecentReferrals []models.ReferralIncome      `json:"recent_referrals"`
}

// GetUserDashboard builds the dashboard for one user
func (s *DashboardService) GetUserDashboard(userID uuid.UUID) (*Data, error) {
	var user models.User
	if err := s.db.Select("wallet_balance").First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("error finding user %s: %w", userID, err)
	}

	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("error finding investments: %w", err)
	}

	type roiTotals struct {
		Total float64
		Count int64
	}
	var roi roiTotals
	if err := s.db.Model(&models.RoiHistory{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&roi).Error; err != nil {
		return nil, fmt.Errorf("error aggregating ROI: %w", err)
	}

	levelIncome, err := s.referralSvc.LevelSummary(userID)
	if err != nil {
		return nil, err
	}

	var recentRoi []models.RoiHistory
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentEntriesLimit).
		Find(&recentRoi).Error; err != nil {
		return nil, fmt.Errorf("error finding recent ROI: %w", err)
	}

	var recentReferrals []models.ReferralIncome
	if err := s.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(recentEntriesLimit).
		Find(&recentReferrals).Error; err != nil {
		return nil, fmt.Errorf("error finding recent referral income: %w", err)
	}

	totalInvested := 0.0
	activeCount := 0
	for _, inv := range investments {
		totalInvested += inv.Amount
		if inv.Status == models.InvestmentStatusActive {
			activeCount++
		}
	}

	totalReferralIncome := 0.0
	for _, entry := range levelIncome {
		totalReferralIncome += entry.TotalIncome
	}

	return &Data{
		Summary: Summary{
			WalletBalance:       user.WalletBalance,
			TotalInvested:       money.Round2(totalInvested),
			ActiveInvestments:   activeCount,
			TotalInvestments:    len(investments),
			TotalRoiEarned:      money.Round2(roi.Total),
			TotalRoiPayments:    roi.Count,
			TotalReferralIncome: money.Round2(totalReferralIncome),
			TotalIncome:         money.Round2(roi.Total + totalReferralIncome),
		},
		Investments:     investments,
		LevelIncome:     levelIncome,
		RecentRoi:       recentRoi,
		RecentReferrals: recentReferrals,
	}, nil
}
