package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan identifies an investment plan with a fixed daily interest rate
type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanStandard Plan = "standard"
	PlanPremium  Plan = "premium"
)

// PlanDailyRate maps each plan to its daily interest rate in percent
var PlanDailyRate = map[Plan]float64{
	PlanBasic:    0.5,
	PlanStandard: 1.0,
	PlanPremium:  1.5,
}

// InvestmentStatus represents the lifecycle state of an investment
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusMatured   InvestmentStatus = "matured"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

// MinInvestmentAmount is the smallest principal accepted for a new investment
const MinInvestmentAmount = 1.0

// InvestmentTermDays is the fixed term of every investment
const InvestmentTermDays = 365

// Investment represents a principal deposit earning daily interest. Status
// moves active -> matured exactly once, performed by the maturity sweep;
// matured and cancelled investments never accrue again.
type Investment struct {
	Base
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_investments_user_status" json:"user_id"`
	User          User             `gorm:"foreignKey:UserID" json:"-"`
	Amount        float64          `gorm:"type:decimal(20,2);not null" json:"amount"`
	Plan          Plan             `gorm:"type:varchar(20);not null" json:"plan"`
	DailyRoiRate  float64          `gorm:"type:decimal(5,2);not null" json:"daily_roi_rate"`
	StartDate     time.Time        `gorm:"not null" json:"start_date"`
	EndDate       time.Time        `gorm:"not null;index:idx_investments_status_end" json:"end_date"`
	Status        InvestmentStatus `gorm:"type:varchar(20);not null;default:'active';index:idx_investments_user_status;index:idx_investments_status_end" json:"status"`
}
