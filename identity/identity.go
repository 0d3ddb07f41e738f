// Package identity stands in for the platform's identity provider: it
// owns account credentials and mints the bearer tokens the API checks.
// Profile data lives in the user directory, not here.
package identity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("identity: email already in use")
	ErrDuplicatePhone = errors.New("identity: phone number already in use")
	ErrNotFound       = errors.New("identity: account not found")
	ErrInvalidToken   = errors.New("identity: invalid or expired token")
	ErrBadCredentials = errors.New("identity: wrong email or password")
)

// Account is the provider-side record. Only credentials and the
// display identity belong here.
type Account struct {
	UID          string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Telephone    string `gorm:"index"`
	DisplayName  string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Account) TableName() string { return "comptes" }

// Service wraps the account table and token signing.
type Service struct {
	db     *gorm.DB
	secret []byte
}

func New(db *gorm.DB, secret string) *Service {
	return &Service{db: db, secret: []byte(secret)}
}

// CreateAccount provisions a new identity and returns its uid.
func (s *Service) CreateAccount(email, password, displayName, telephone string) (string, error) {
	if err := s.checkDuplicates("", email, telephone); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	acc := Account{
		UID:          uuid.NewString(),
		Email:        email,
		Telephone:    telephone,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&acc).Error; err != nil {
		return "", err
	}
	return acc.UID, nil
}

// AccountUpdate carries the optional fields of a partial account
// update; empty fields are left untouched.
type AccountUpdate struct {
	Email       string
	Telephone   string
	Password    string
	DisplayName string
}

// UpdateAccount applies the non-empty fields of upd to an account.
func (s *Service) UpdateAccount(uid string, upd AccountUpdate) error {
	var acc Account
	if err := s.db.First(&acc, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.checkDuplicates(uid, upd.Email, upd.Telephone); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if upd.Email != "" {
		updates["email"] = upd.Email
	}
	if upd.Telephone != "" {
		updates["telephone"] = upd.Telephone
	}
	if upd.DisplayName != "" {
		updates["display_name"] = upd.DisplayName
	}
	if upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&acc).Updates(updates).Error
}

// LookupByEmail returns the uid of the account registered under email.
func (s *Service) LookupByEmail(email string) (string, error) {
	var acc Account
	if err := s.db.First(&acc, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return acc.UID, nil
}

// VerifyPassword checks an email+password pair and returns the
// matching account uid.
func (s *Service) VerifyPassword(email, password string) (string, error) {
	var acc Account
	if err := s.db.First(&acc, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return acc.UID, nil
}

func (s *Service) checkDuplicates(selfUID, email, telephone string) error {
	if email != "" {
		var n int64
		if err := s.db.Model(&Account{}).
			Where("email = ? AND uid <> ?", email, selfUID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateEmail
		}
	}
	if telephone != "" {
		var n int64
		if err := s.db.Model(&Account{}).
			Where("telephone = ? AND uid <> ?", telephone, selfUID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicatePhone
		}
	}
	return nil
}
