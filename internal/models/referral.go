package models

import (
	"github.com/google/uuid"
)

// ReferralIncome accumulates commission paid to one upline beneficiary for
// one investment. There is exactly one row per (investment, user): the
// creation-time principal commission and every daily interest share all
// increment the same row's amount. Level and percentage are recorded when
// the row is first created.
type ReferralIncome struct {
	Base
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_referral_income_investment_user;index:idx_referral_income_user" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	FromUserID   uuid.UUID  `gorm:"type:uuid;not null" json:"from_user_id"`
	FromUser     User       `gorm:"foreignKey:FromUserID" json:"-"`
	InvestmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_referral_income_investment_user" json:"investment_id"`
	Investment   Investment `gorm:"foreignKey:InvestmentID" json:"-"`
	Level        int        `gorm:"not null" json:"level"`
	Percentage   float64    `gorm:"type:decimal(5,2);not null" json:"percentage"`
	Amount       float64    `gorm:"type:decimal(20,2);not null" json:"amount"`
}
