package errors

// ErrorCode is the stable, machine-readable identifier carried in every
// error response
type ErrorCode string

// Authorization error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthInvalidToken           ErrorCode = "AUTH_002"
	AuthInsufficientPermission ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral           ErrorCode = "VALIDATION_001"
	ValidationRequiredField     ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat     ErrorCode = "VALIDATION_003"
	ValidationOutOfRange        ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail      ErrorCode = "VALIDATION_005"
	ValidationInvalidIdentifier ErrorCode = "VALIDATION_006"
	ValidationMalformedBody     ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound       ErrorCode = "USER_001"
	UserEmailTaken     ErrorCode = "USER_002"
	UserWeakCredential ErrorCode = "USER_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountInvalidType           ErrorCode = "ACCOUNT_002"
	AccountInvalidInitialBalance ErrorCode = "ACCOUNT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound             ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount        ErrorCode = "TRANSACTION_002"
	TransactionInsufficientFunds    ErrorCode = "TRANSACTION_003"
	TransactionIdempotencyKeyReused ErrorCode = "TRANSACTION_004"
	TransactionInvalidType          ErrorCode = "TRANSACTION_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemCredentialHashing  ErrorCode = "SYSTEM_004"
	SystemUnknownProcedure   ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthInvalidToken:           "Authorization token is invalid or expired",
	AuthInsufficientPermission: "Caller is not allowed to invoke this procedure",

	ValidationGeneral:           "Validation failed",
	ValidationRequiredField:     "Required field is missing",
	ValidationInvalidFormat:     "Invalid field format",
	ValidationOutOfRange:        "Field value is out of allowed range",
	ValidationInvalidEmail:      "Invalid email address format",
	ValidationInvalidIdentifier: "Malformed identifier",
	ValidationMalformedBody:     "Request body is not valid JSON",

	UserNotFound:       "User not found",
	UserEmailTaken:     "A user with this email is already registered",
	UserWeakCredential: "Password does not meet the requirements",

	AccountNotFound:              "Bank account not found",
	AccountInvalidType:           "Invalid account type",
	AccountInvalidInitialBalance: "Initial balance cannot be negative",

	TransactionNotFound:             "Transaction not found",
	TransactionInvalidAmount:        "Transaction amount must be positive",
	TransactionInsufficientFunds:    "Insufficient account balance for this transaction",
	TransactionIdempotencyKeyReused: "Idempotency key was already used for a different transaction",
	TransactionInvalidType:          "Invalid transaction type",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "The ledger could not complete the operation. Please retry with the same idempotency key",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemCredentialHashing:  "Credentials could not be processed",
	SystemUnknownProcedure:   "Unknown procedure",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for code, or a generic one
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
