package models

import (
	"github.com/google/uuid"
)

// User represents an investor account. ReferredByID links a user to the one
// account that invited them; following the link repeatedly yields the upline.
type User struct {
	Base
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"type:varchar(255);not null" json:"-"`
	ReferralCode  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"referral_code"`
	ReferredByID  *uuid.UUID `gorm:"type:uuid;index" json:"referred_by,omitempty"`
	ReferredBy    *User      `gorm:"foreignKey:ReferredByID" json:"-"`
	WalletBalance float64    `gorm:"type:decimal(20,2);not null;default:0" json:"wallet_balance"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	IsAdmin       bool       `gorm:"default:false" json:"is_admin"`
}
