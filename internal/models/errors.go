package models

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the ledger wraps exactly one of
// these, so callers can classify with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPersistence       = errors.New("persistence failure")
	ErrCredentialHashing = errors.New("credential hashing failure")
)

var (
	ErrInvalidAccountKind     = fmt.Errorf("%w: invalid account type", ErrInvalidArgument)
	ErrInvalidTransactionKind = fmt.Errorf("%w: invalid transaction type", ErrInvalidArgument)
	ErrInvalidAmount          = fmt.Errorf("%w: transaction amount must be positive", ErrInvalidArgument)
	ErrInvalidInitialBalance  = fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidArgument)
	ErrInvalidIdentifier      = fmt.Errorf("%w: malformed identifier", ErrInvalidArgument)
	ErrIdempotencyKeyReused   = fmt.Errorf("%w: idempotency key was used for a different transaction", ErrInvalidArgument)
	ErrEmailTaken             = fmt.Errorf("%w: email is already registered", ErrInvalidArgument)
	ErrWeakCredential         = fmt.Errorf("%w: password does not meet the requirements", ErrInvalidArgument)
	ErrMalformedText          = fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidArgument)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrAccountNotFound = fmt.Errorf("%w: bank account not found", ErrNotFound)

	ErrJournalImmutable = errors.New("journal entries cannot be modified")
)

// Persistence wraps an infrastructure failure into the persistence class
// while keeping the cause in the chain.
func Persistence(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, cause)
}

// IsDomainError reports whether err is caused by caller input or a business
// rule rather than by infrastructure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInsufficientFunds)
}
