package services

import (
	"context"
	"log/slog"
	"time"

	"finance-control/internal/models"

	"github.com/google/uuid"
)

// TransactionState is a step in the life of one ExecuteTransaction request
type TransactionState string

const (
	StateReceived      TransactionState = "RECEIVED"
	StateValidated     TransactionState = "VALIDATED"
	StateAccountLocked TransactionState = "ACCOUNT_LOCKED"
	StateComputed      TransactionState = "COMPUTED"
	StatePersisted     TransactionState = "PERSISTED"
	StateAborted       TransactionState = "ABORTED"
)

type correlationIDKey struct{}

// WithCorrelationID attaches the request trace id to ctx for audit records
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransactionStateChange(ctx context.Context, requestID uuid.UUID, state TransactionState, attrs ...any) {
	level := slog.LevelInfo
	if state == StateAborted {
		level = slog.LevelWarn
	}

	args := []any{
		slog.String("event_type", "transaction_state_change"),
		slog.String("request_id", requestID.String()),
		slog.String("state", string(state)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}
	al.logger.Log(ctx, level, "transaction state change", append(args, attrs...)...)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance models.Money, transactionID uuid.UUID) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.Int64("old_balance_minor_units", oldBalance.MinorUnits()),
		slog.Int64("new_balance_minor_units", newBalance.MinorUnits()),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogIdempotentReplay(ctx context.Context, idempotencyKey string, transactionID uuid.UUID) {
	al.logger.InfoContext(ctx, "idempotent replay",
		slog.String("event_type", "idempotent_replay"),
		slog.String("idempotency_key", idempotencyKey),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountOpened(ctx context.Context, accountID, userID uuid.UUID, kind models.AccountKind, initialBalance models.Money) {
	al.logger.InfoContext(ctx, "bank account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_id", accountID.String()),
		slog.String("user_id", userID.String()),
		slog.String("account_type", kind.String()),
		slog.Int64("initial_balance_minor_units", initialBalance.MinorUnits()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogUserRegistered(ctx context.Context, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "user registered",
		slog.String("event_type", "user_registered"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAuthorizationFailure(ctx context.Context, procedure, reason string) {
	al.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("procedure", procedure),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the trace id attached by WithCorrelationID
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
