package wallet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/primevest/backend/internal/models"
	"gorm.io/gorm"
)

// WalletService handles user balance operations
type WalletService struct {
	db *gorm.DB
}

// NewWalletService creates a new wallet service
func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// Credit adds funds to a user's wallet balance
func (s *WalletService) Credit(userID uuid.UUID, amount float64) error {
	return s.CreditWithTx(s.db, userID, amount)
}

// CreditWithTx adds funds to a user's wallet balance inside an existing
// transaction. The balance update is a single atomic increment so concurrent
// engine runs cannot lose updates to each other.
func (s *WalletService) CreditWithTx(tx *gorm.DB, userID uuid.UUID, amount float64) error {
	result := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("error crediting wallet for user %s: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("error crediting wallet: user %s not found", userID)
	}
	return nil
}

// Balance returns a user's current wallet balance
func (s *WalletService) Balance(userID uuid.UUID) (float64, error) {
	var user models.User
	if err := s.db.Select("wallet_balance").First(&user, "id = ?", userID).Error; err != nil {
		return 0, fmt.Errorf("error finding user %s: %w", userID, err)
	}
	return user.WalletBalance, nil
}
