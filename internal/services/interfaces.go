package services

import (
	"context"
	"time"

	"finance-control/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface applies INCOME/OUTCOME movements to bank accounts
type LedgerServiceInterface interface {
	ExecuteTransaction(ctx context.Context, input ExecuteTransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error)
	ReconcileAccount(ctx context.Context, accountID string) (*Reconciliation, error)
}

type AccountServiceInterface interface {
	CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*models.BankAccount, error)
	GetBankAccount(ctx context.Context, accountID string) (*models.BankAccount, error)
}

type UserServiceInterface interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*models.User, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// RequestCounterInterface counts served remote procedure calls
type RequestCounterInterface interface {
	Increment(procedure string)
	Count() uint64
}

type AuditLoggerInterface interface {
	LogTransactionStateChange(ctx context.Context, requestID uuid.UUID, state TransactionState, attrs ...any)
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance models.Money, transactionID uuid.UUID)
	LogIdempotentReplay(ctx context.Context, idempotencyKey string, transactionID uuid.UUID)
	LogAccountOpened(ctx context.Context, accountID, userID uuid.UUID, kind models.AccountKind, initialBalance models.Money)
	LogUserRegistered(ctx context.Context, userID uuid.UUID)
	LogAuthorizationFailure(ctx context.Context, procedure, reason string)
}

// AuthorizationPolicy decides whether a caller may invoke a procedure. It
// runs before any handler and never sees business payloads.
type AuthorizationPolicy interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*Principal, error)
}
