package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User owns bank accounts. Created at registration and immutable afterwards.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CredentialHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`

	BankAccounts []BankAccount `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	return errors.New("users are immutable after registration")
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.Email == "" {
		return errors.New("email is required")
	}

	if !IsValidEmail(u.Email) {
		return errors.New("invalid email format")
	}

	if u.CredentialHash == "" {
		return errors.New("credential hash is required")
	}

	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func (u *User) TableName() string {
	return "users"
}
