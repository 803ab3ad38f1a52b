package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountKind is the enumerated bank account type
type AccountKind string

const (
	AccountKindChecking   AccountKind = "CHECKING"
	AccountKindInvestment AccountKind = "INVESTMENT"
	AccountKindCash       AccountKind = "CASH"
)

// AccountKinds lists every accepted account kind
var AccountKinds = []AccountKind{AccountKindChecking, AccountKindInvestment, AccountKindCash}

var ErrNegativeBalance = errors.New("balance cannot be negative")

// IsValid checks the kind against the fixed literal set
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindChecking, AccountKindInvestment, AccountKindCash:
		return true
	default:
		return false
	}
}

func (k AccountKind) String() string {
	return string(k)
}

// BankAccount represents an account owned by a user. Its balance is only
// ever changed by the ledger engine.
type BankAccount struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Balance   Money       `gorm:"column:balance_minor_units;not null;default:0" json:"balance_minor_units"`
	Kind      AccountKind `gorm:"column:kind;type:varchar(20);not null" json:"account_type"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`

	// Associations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for BankAccount
func (a *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *BankAccount) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !a.Kind.IsValid() {
		return ErrInvalidAccountKind
	}

	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}

// Apply returns the balance that results from applying a movement of the
// given kind. OUTCOME never takes the balance below zero.
func (a *BankAccount) Apply(kind TransactionKind, amount Money) (Money, error) {
	switch kind {
	case TransactionKindIncome:
		return a.Balance.Add(amount)
	case TransactionKindOutcome:
		if a.Balance < amount {
			return a.Balance, ErrInsufficientFunds
		}
		return a.Balance.Sub(amount)
	default:
		return a.Balance, ErrInvalidTransactionKind
	}
}

// TableName returns the table name for BankAccount
func (a *BankAccount) TableName() string {
	return "bank_accounts"
}
