package roi

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/money"
	"github.com/primevest/backend/internal/services/referral"
	"github.com/primevest/backend/internal/services/settings"
	"github.com/primevest/backend/internal/services/wallet"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoiService runs the daily accrual and commission distribution cycle
type RoiService struct {
	db          *gorm.DB
	walletSvc   *wallet.WalletService
	referralSvc *referral.ReferralService
	settingsSvc *settings.SettingsService
}

// NewRoiService creates a new ROI service
func NewRoiService(db *gorm.DB, walletSvc *wallet.WalletService, referralSvc *referral.ReferralService, settingsSvc *settings.SettingsService) *RoiService {
	return &RoiService{
		db:          db,
		walletSvc:   walletSvc,
		referralSvc: referralSvc,
		settingsSvc: settingsSvc,
	}
}

// RunSummary reports one daily cycle. Per-investment failures are collected
// in Errors; they never abort the run.
type RunSummary struct {
	ProcessedInvestments        int      `json:"processed_investments"`
	MaturedInvestments          int      `json:"matured_investments"`
	TotalRoiDistributed         float64  `json:"total_roi_distributed"`
	TotalLevelIncomeDistributed float64  `json:"total_level_income_distributed"`
	Errors                      []string `json:"errors"`
}

// StartOfDay truncates a timestamp to the beginning of its UTC calendar day
func StartOfDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// ProcessDailyCycle executes one full engine pass:
//
//  1. Mature every active investment whose term has elapsed, so it is
//     excluded from this cycle's accrual.
//  2. Fetch the remaining active set and load the level configuration once.
//  3. For each investment, credit the day's interest (idempotent per
//     (investment, day)) and distribute level income up the upline.
//
// Safe to call repeatedly for the same day: re-runs find their interest
// entries already present and change nothing. Only a sweep, fetch or
// configuration failure aborts the run.
func (s *RoiService) ProcessDailyCycle(ctx context.Context) (*RunSummary, error) {
	today := StartOfDay(time.Now())
	summary := &RunSummary{Errors: []string{}}

	result := s.db.WithContext(ctx).Model(&models.Investment{}).
		Where("status = ? AND end_date <= ?", models.InvestmentStatusActive, today).
		Update("status", models.InvestmentStatusMatured)
	if result.Error != nil {
		return nil, apperrors.Fatal("maturity sweep failed", result.Error)
	}
	summary.MaturedInvestments = int(result.RowsAffected)
	if summary.MaturedInvestments > 0 {
		log.Printf("Marked %d investments as matured", summary.MaturedInvestments)
	}

	var activeInvestments []models.Investment
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.InvestmentStatusActive).
		Find(&activeInvestments).Error; err != nil {
		return nil, apperrors.Fatal("failed to fetch active investments", err)
	}
	if len(activeInvestments) == 0 {
		log.Printf("No active investments to process for daily ROI")
		return summary, nil
	}

	levels, err := s.settingsSvc.GetLevelConfig()
	if err != nil {
		return nil, apperrors.Fatal("failed to load level configuration", err)
	}

	for _, investment := range activeInvestments {
		roiAmount := money.Percent(investment.Amount, investment.DailyRoiRate)

		credited, err := s.accrue(ctx, investment, roiAmount, today)
		if err != nil {
			itemErr := apperrors.Transient(fmt.Sprintf("failed to process ROI for investment %s", investment.ID), err)
			log.Print(itemErr.Error())
			summary.Errors = append(summary.Errors, itemErr.Error())
			continue
		}
		if !credited {
			// Already processed today
			continue
		}

		summary.ProcessedInvestments++
		summary.TotalRoiDistributed = money.Round2(summary.TotalRoiDistributed + roiAmount)

		distributed, err := s.referralSvc.Distribute(investment.UserID, investment.ID, roiAmount, levels)
		summary.TotalLevelIncomeDistributed = money.Round2(summary.TotalLevelIncomeDistributed + distributed)
		if err != nil {
			itemErr := apperrors.Transient(fmt.Sprintf("failed to distribute level income for investment %s", investment.ID), err)
			log.Print(itemErr.Error())
			summary.Errors = append(summary.Errors, itemErr.Error())
		}
	}

	return summary, nil
}

// accrue inserts the day's interest entry and credits the owner's wallet as
// one all-or-nothing unit. Returns false when the (investment, day) entry
// already exists; the loser of a concurrent race lands here too.
func (s *RoiService) accrue(ctx context.Context, investment models.Investment, amount float64, day time.Time) (bool, error) {
	credited := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := models.RoiHistory{
			UserID:       investment.UserID,
			InvestmentID: investment.ID,
			Amount:       amount,
			Date:         day,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "investment_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&entry)
		if result.Error != nil {
			return fmt.Errorf("error creating ROI entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := s.walletSvc.CreditWithTx(tx, investment.UserID, amount); err != nil {
			return err
		}
		credited = true
		return nil
	})
	return credited, err
}

// History returns a user's interest entries, newest first
func (s *RoiService) History(userID uuid.UUID, page, pageSize int) ([]models.RoiHistory, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := s.db.Model(&models.RoiHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("error counting ROI entries: %w", err)
	}

	var entries []models.RoiHistory
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("error finding ROI entries: %w", err)
	}

	return entries, total, nil
}
