package referral

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/money"
	"github.com/primevest/backend/internal/services/wallet"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HardTreeDepthCap bounds downline traversal regardless of the requested depth
const HardTreeDepthCap = 10

// ReferralService walks the referral forest: commission distribution up the
// upline and tree construction down the downline.
type ReferralService struct {
	db        *gorm.DB
	walletSvc *wallet.WalletService
	cache     *redis.Client
	cacheTTL  time.Duration
}

// NewReferralService creates a new referral service. cache may be nil, in
// which case tree reads always hit the database.
func NewReferralService(db *gorm.DB, walletSvc *wallet.WalletService, cache *redis.Client, cacheTTL time.Duration) *ReferralService {
	return &ReferralService{
		db:        db,
		walletSvc: walletSvc,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// Upline returns a user's referral ancestors, nearest first, following the
// ReferredByID link up to maxDepth steps. A chain shorter than maxDepth is
// not an error; the walk simply stops at the forest root.
func (s *ReferralService) Upline(userID uuid.UUID, maxDepth int) ([]models.User, error) {
	ancestors := make([]models.User, 0, maxDepth)
	currentID := userID

	for depth := 0; depth < maxDepth; depth++ {
		var current models.User
		if err := s.db.First(&current, "id = ?", currentID).Error; err != nil {
			return nil, fmt.Errorf("error walking upline at %s: %w", currentID, err)
		}
		if current.ReferredByID == nil {
			break
		}

		var parent models.User
		if err := s.db.First(&parent, "id = ?", *current.ReferredByID).Error; err != nil {
			return nil, fmt.Errorf("error loading referrer %s: %w", *current.ReferredByID, err)
		}
		ancestors = append(ancestors, parent)
		currentID = parent.ID
	}

	return ancestors, nil
}

// Distribute pays each upline ancestor its configured percentage of
// baseAmount for the given investment and returns the total credited.
//
// Commission for one (investment, beneficiary) pair always lands in a single
// ReferralIncome row: the row is created on first contact and incremented on
// every later one, so the creation-time principal commission and each day's
// interest share accumulate together. The increment and the wallet credit
// are atomic column updates, safe under concurrent runs.
func (s *ReferralService) Distribute(fromUserID, investmentID uuid.UUID, baseAmount float64, levels models.LevelEntries) (float64, error) {
	ancestors, err := s.Upline(fromUserID, len(levels))
	if err != nil {
		return 0, err
	}

	totalDistributed := 0.0
	for i, ancestor := range ancestors {
		entry := levels[i]
		amount := money.Percent(baseAmount, entry.Percentage)
		if amount <= 0 {
			// Zero-percentage levels still advance the walk
			continue
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			income := models.ReferralIncome{
				UserID:       ancestor.ID,
				FromUserID:   fromUserID,
				InvestmentID: investmentID,
				Level:        entry.Level,
				Percentage:   entry.Percentage,
				Amount:       amount,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "investment_id"}, {Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"amount":     gorm.Expr("amount + ?", amount),
					"updated_at": time.Now().UTC(),
				}),
			}).Create(&income).Error; err != nil {
				return fmt.Errorf("error upserting referral income: %w", err)
			}

			return s.walletSvc.CreditWithTx(tx, ancestor.ID, amount)
		})
		if err != nil {
			return totalDistributed, fmt.Errorf("error crediting level %d for investment %s: %w", entry.Level, investmentID, err)
		}

		totalDistributed += amount
	}

	return money.Round2(totalDistributed), nil
}

// ReferralNode is one user in the downline tree
type ReferralNode struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	ReferralCode string         `json:"referral_code"`
	Level        int            `json:"level"`
	JoinedAt     time.Time      `json:"joined_at"`
	Children     []ReferralNode `json:"children"`
}

// LevelSummaryEntry aggregates commission income received at one depth
type LevelSummaryEntry struct {
	Level         int     `json:"level"`
	TotalIncome   float64 `json:"total_income"`
	ReferralCount int64   `json:"referral_count"`
}

// ReferralTreeData is the read-side report for a user's downline
type ReferralTreeData struct {
	ReferralCode    string              `json:"referral_code"`
	DirectReferrals int64               `json:"direct_referrals"`
	LevelSummary    []LevelSummaryEntry `json:"level_summary"`
	Tree            []ReferralNode      `json:"tree"`
}

// GetReferralTree builds the bounded-depth downline report for a user.
// maxDepth is clamped to HardTreeDepthCap regardless of what was requested.
func (s *ReferralService) GetReferralTree(ctx context.Context, userID uuid.UUID, maxDepth int) (*ReferralTreeData, error) {
	if maxDepth < 1 || maxDepth > HardTreeDepthCap {
		maxDepth = HardTreeDepthCap
	}

	cacheKey := fmt.Sprintf("referral:tree:%s:%d", userID, maxDepth)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var data ReferralTreeData
			if err := json.Unmarshal(cached, &data); err == nil {
				return &data, nil
			}
		}
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("error finding user %s: %w", userID, err)
	}

	tree, err := s.buildTree(userID, 1, maxDepth)
	if err != nil {
		return nil, err
	}

	summary, err := s.LevelSummary(userID)
	if err != nil {
		return nil, err
	}

	var directReferrals int64
	if err := s.db.Model(&models.User{}).
		Where("referred_by_id = ? AND is_active = ?", userID, true).
		Count(&directReferrals).Error; err != nil {
		return nil, fmt.Errorf("error counting direct referrals: %w", err)
	}

	data := &ReferralTreeData{
		ReferralCode:    user.ReferralCode,
		DirectReferrals: directReferrals,
		LevelSummary:    summary,
		Tree:            tree,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(data); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.cacheTTL).Err(); err != nil {
				log.Printf("Failed to cache referral tree for %s: %v", userID, err)
			}
		}
	}

	return data, nil
}

// buildTree recursively fetches active direct referrals until depth exceeds maxDepth
func (s *ReferralService) buildTree(userID uuid.UUID, depth, maxDepth int) ([]ReferralNode, error) {
	if depth > maxDepth {
		return []ReferralNode{}, nil
	}

	var referrals []models.User
	if err := s.db.Where("referred_by_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&referrals).Error; err != nil {
		return nil, fmt.Errorf("error loading referrals of %s: %w", userID, err)
	}

	tree := make([]ReferralNode, 0, len(referrals))
	for _, referral := range referrals {
		children, err := s.buildTree(referral.ID, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		tree = append(tree, ReferralNode{
			ID:           referral.ID,
			Name:         referral.Name,
			Email:        referral.Email,
			ReferralCode: referral.ReferralCode,
			Level:        depth,
			JoinedAt:     referral.CreatedAt,
			Children:     children,
		})
	}

	return tree, nil
}

// LevelSummary aggregates a user's commission income grouped by level
func (s *ReferralService) LevelSummary(userID uuid.UUID) ([]LevelSummaryEntry, error) {
	var summary []LevelSummaryEntry
	err := s.db.Model(&models.ReferralIncome{}).
		Select("level, SUM(amount) AS total_income, COUNT(*) AS referral_count").
		Where("user_id = ?", userID).
		Group("level").
		Order("level ASC").
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("error aggregating level income: %w", err)
	}
	return summary, nil
}
