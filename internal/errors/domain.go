package errors

import (
	stderrors "errors"

	"finance-control/internal/models"
)

// specificCodes is checked in order; the first sentinel found in the chain
// wins over the class fallback below
var specificCodes = []struct {
	err  error
	code ErrorCode
}{
	{models.ErrInvalidIdentifier, ValidationInvalidIdentifier},
	{models.ErrInvalidAccountKind, AccountInvalidType},
	{models.ErrInvalidInitialBalance, AccountInvalidInitialBalance},
	{models.ErrInvalidTransactionKind, TransactionInvalidType},
	{models.ErrInvalidAmount, TransactionInvalidAmount},
	{models.ErrIdempotencyKeyReused, TransactionIdempotencyKeyReused},
	{models.ErrEmailTaken, UserEmailTaken},
	{models.ErrWeakCredential, UserWeakCredential},
	{models.ErrAmountOverflow, ValidationOutOfRange},
	{models.ErrMalformedText, ValidationInvalidFormat},
	{models.ErrUserNotFound, UserNotFound},
	{models.ErrAccountNotFound, AccountNotFound},
}

// CodeFor classifies a service error. Anything outside the known classes is
// an internal error.
func CodeFor(err error) ErrorCode {
	for _, candidate := range specificCodes {
		if stderrors.Is(err, candidate.err) {
			return candidate.code
		}
	}

	switch {
	case stderrors.Is(err, models.ErrInvalidArgument):
		return ValidationGeneral
	case stderrors.Is(err, models.ErrNotFound):
		return TransactionNotFound
	case stderrors.Is(err, models.ErrInsufficientFunds):
		return TransactionInsufficientFunds
	case stderrors.Is(err, models.ErrPersistence):
		return SystemDatabaseError
	case stderrors.Is(err, models.ErrCredentialHashing):
		return SystemCredentialHashing
	default:
		return SystemInternalError
	}
}

// FromError builds the response for a service error. Client errors carry the
// error text as a detail; server errors stay opaque.
func FromError(err error, traceID string) *ErrorResponse {
	code := CodeFor(err)
	if GetHTTPStatus(code) >= 500 {
		return NewErrorResponse(code, traceID)
	}
	return NewErrorResponse(code, traceID, WithDetails(err.Error()))
}
