package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionKind is the direction of a monetary movement
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindOutcome TransactionKind = "OUTCOME"
)

// Wire codes for TransactionKind
const (
	TransactionCodeIncome  int32 = 0
	TransactionCodeOutcome int32 = 1
)

const InitialDepositDescription = "Initial deposit"

func (k TransactionKind) IsValid() bool {
	return k == TransactionKindIncome || k == TransactionKindOutcome
}

// Code returns the numeric wire code for the kind, or -1 if unknown
func (k TransactionKind) Code() int32 {
	switch k {
	case TransactionKindIncome:
		return TransactionCodeIncome
	case TransactionKindOutcome:
		return TransactionCodeOutcome
	default:
		return -1
	}
}

func (k TransactionKind) String() string {
	return string(k)
}

// Transaction is an immutable journal record of one monetary movement
type Transaction struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount         Money           `gorm:"column:amount_minor_units;not null" json:"amount_minor_units"`
	Kind           TransactionKind `gorm:"column:kind;type:varchar(10);not null" json:"transaction_type"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	IdempotencyKey *string         `gorm:"type:varchar(255);uniqueIndex" json:"idempotency_key,omitempty"`
	BalanceAfter   Money           `gorm:"column:balance_after_minor_units;not null" json:"balance_after_minor_units"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Account BankAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	return t.Validate()
}

// BeforeUpdate rejects any change to a persisted journal entry
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrJournalImmutable
}

// BeforeDelete rejects removal of a persisted journal entry
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return ErrJournalImmutable
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !t.Kind.IsValid() {
		return ErrInvalidTransactionKind
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.BalanceAfter.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}

// Matches reports whether t records the same movement as the given request.
// Used to decide if a replayed idempotency key is a safe retry.
func (t *Transaction) Matches(accountID uuid.UUID, kind TransactionKind, amount Money) bool {
	return t.AccountID == accountID && t.Kind == kind && t.Amount == amount
}

// DescriptionOrEmpty returns the description or "" when absent
func (t *Transaction) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
