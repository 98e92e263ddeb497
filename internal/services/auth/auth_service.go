package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/config"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/utils"
	"gorm.io/gorm"
)

// referralCodeAttempts bounds retries when a generated code collides
const referralCodeAttempts = 5

// AuthService handles registration and login
type AuthService struct {
	db  *gorm.DB
	cfg config.JWTConfig
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg config.JWTConfig) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// AuthResult is returned on successful registration or login
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a user account. A supplied referral code links the new
// user to its referrer; the link is set once here and never changes, which
// keeps the referral graph a forest.
func (s *AuthService) Register(name, email, password, referralCode string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.New(apperrors.KindConflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	var referrer *models.User
	if referralCode != "" {
		var found models.User
		if err := s.db.Where("referral_code = ? AND is_active = ?", referralCode, true).
			First(&found).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Validation("invalid referral code")
			}
			return nil, fmt.Errorf("error finding referrer: %w", err)
		}
		referrer = &found
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if referrer != nil {
		user.ReferredByID = &referrer.ID
	}

	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		user.ReferralCode = utils.GenerateReferralCode(name)
		err = s.db.Create(&user).Error
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin, s.cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{User: &user, Token: token}, nil
}

// Login verifies credentials and issues a token
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.New(apperrors.KindUnauthorized, "account is deactivated")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin, s.cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{User: &user, Token: token}, nil
}
