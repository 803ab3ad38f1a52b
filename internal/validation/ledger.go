package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"finance-control/internal/models"
)

// Ledger input checks. All are pure and run before any storage access.

// ParseAccountKind maps a raw literal onto an AccountKind. Matching is exact.
func ParseAccountKind(raw string) (models.AccountKind, error) {
	kind := models.AccountKind(raw)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidAccountKind, raw)
	}
	return kind, nil
}

// ParseTransactionKind maps the numeric wire code onto a TransactionKind
func ParseTransactionKind(code int32) (models.TransactionKind, error) {
	switch code {
	case models.TransactionCodeIncome:
		return models.TransactionKindIncome, nil
	case models.TransactionCodeOutcome:
		return models.TransactionKindOutcome, nil
	default:
		return "", fmt.Errorf("%w: code %d", models.ErrInvalidTransactionKind, code)
	}
}

// CheckAmount rejects zero and negative amounts
func CheckAmount(amount models.Money) error {
	if !amount.IsPositive() {
		return models.ErrInvalidAmount
	}
	return nil
}

// CheckSufficiency only constrains OUTCOME; INCOME is always sufficient
func CheckSufficiency(kind models.TransactionKind, amount, currentBalance models.Money) error {
	if kind == models.TransactionKindOutcome && currentBalance < amount {
		return fmt.Errorf("%w: balance %s, requested %s", models.ErrInsufficientFunds, currentBalance, amount)
	}
	return nil
}

// CheckInitialBalance rejects negative opening balances
func CheckInitialBalance(balance models.Money) error {
	if balance.IsNegative() {
		return models.ErrInvalidInitialBalance
	}
	return nil
}

// ParseIdentifier parses a caller supplied UUID
func ParseIdentifier(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", models.ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// CheckText rejects text that is not valid UTF-8 and text longer than
// maxChars characters. tooLong is returned as is so callers keep their own
// field-specific error.
func CheckText(value string, maxChars int, tooLong error) error {
	if !utf8.ValidString(value) {
		return models.ErrMalformedText
	}
	if utf8.RuneCountInString(value) > maxChars {
		return tooLong
	}
	return nil
}
