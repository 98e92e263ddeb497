package models

import (
	"time"

	"github.com/google/uuid"
)

// RoiHistory records one day's interest payment for one investment. The
// unique index on (investment_id, date) is the idempotency guard for the
// daily cycle: a re-run finds its insert already satisfied and skips.
type RoiHistory struct {
	Base
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_roi_user_date" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	InvestmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_roi_investment_date" json:"investment_id"`
	Investment   Investment `gorm:"foreignKey:InvestmentID" json:"-"`
	Amount       float64    `gorm:"type:decimal(20,2);not null" json:"amount"`
	Date         time.Time  `gorm:"not null;uniqueIndex:idx_roi_investment_date;index:idx_roi_user_date" json:"date"`
}
