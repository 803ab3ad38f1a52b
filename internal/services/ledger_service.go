package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-control/internal/database"
	"finance-control/internal/models"
	"finance-control/internal/repositories"
	"finance-control/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxIdempotencyKeyLength = 255
	MaxDescriptionLength    = 500
	DefaultHistoryLimit     = 100
)

var (
	ErrIdempotencyKeyTooLong = fmt.Errorf("%w: idempotency key must not exceed %d characters", models.ErrInvalidArgument, MaxIdempotencyKeyLength)
	ErrDescriptionTooLong    = fmt.Errorf("%w: description must not exceed %d characters", models.ErrInvalidArgument, MaxDescriptionLength)
)

// ExecuteTransactionInput carries an unvalidated transaction request
type ExecuteTransactionInput struct {
	AccountID      string
	Kind           int32
	Amount         int64
	Description    *string
	IdempotencyKey string
}

// Reconciliation compares a stored balance with the sum of its journal
type Reconciliation struct {
	AccountID  uuid.UUID
	Balance    models.Money
	JournalSum models.Money
}

// Consistent reports whether the balance equals the journal sum
func (r *Reconciliation) Consistent() bool {
	return r.Balance == r.JournalSum
}

// Drift is balance minus journal sum
func (r *Reconciliation) Drift() models.Money {
	return r.Balance - r.JournalSum
}

type ledgerService struct {
	uow             database.UnitOfWork
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	audit           AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	historyLimit    int
}

// NewLedgerService wires the transaction engine. historyLimit caps
// ListTransactions when the caller passes no limit.
func NewLedgerService(
	uow database.UnitOfWork,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	historyLimit int,
) LedgerServiceInterface {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &ledgerService{
		uow:             uow,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		audit:           audit,
		metrics:         metrics,
		logger:          logger,
		historyLimit:    historyLimit,
	}
}

type validatedTransaction struct {
	accountID      uuid.UUID
	kind           models.TransactionKind
	amount         models.Money
	description    *string
	idempotencyKey string
}

func validateTransactionInput(input ExecuteTransactionInput) (*validatedTransaction, error) {
	accountID, err := validation.ParseIdentifier(input.AccountID)
	if err != nil {
		return nil, err
	}

	kind, err := validation.ParseTransactionKind(input.Kind)
	if err != nil {
		return nil, err
	}

	amount := models.Money(input.Amount)
	if err := validation.CheckAmount(amount); err != nil {
		return nil, err
	}

	if input.Description != nil {
		if err := validation.CheckText(*input.Description, MaxDescriptionLength, ErrDescriptionTooLong); err != nil {
			return nil, err
		}
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if err := validation.CheckText(key, MaxIdempotencyKeyLength, ErrIdempotencyKeyTooLong); err != nil {
		return nil, err
	}

	return &validatedTransaction{
		accountID:      accountID,
		kind:           kind,
		amount:         amount,
		description:    input.Description,
		idempotencyKey: key,
	}, nil
}

// ExecuteTransaction validates the request, then locks the account, checks
// funds, appends the journal entry and stores the new balance in a single
// unit of work. Nothing is written unless every step succeeds.
func (s *ledgerService) ExecuteTransaction(ctx context.Context, input ExecuteTransactionInput) (*models.Transaction, error) {
	start := time.Now()
	requestID := uuid.New()
	s.audit.LogTransactionStateChange(ctx, requestID, StateReceived)

	req, err := validateTransactionInput(input)
	if err != nil {
		s.abort(ctx, requestID, "", err)
		return nil, err
	}
	s.audit.LogTransactionStateChange(ctx, requestID, StateValidated,
		slog.String("account_id", req.accountID.String()),
		slog.String("kind", req.kind.String()),
		slog.Int64("amount_minor_units", req.amount.MinorUnits()),
	)

	var (
		result     *models.Transaction
		oldBalance models.Money
		replayed   bool
	)

	err = s.uow.Execute(ctx, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FetchForUpdate(ctx, tx, req.accountID)
		if err != nil {
			return classify("fetch account", err)
		}
		s.audit.LogTransactionStateChange(ctx, requestID, StateAccountLocked,
			slog.Int64("balance_minor_units", account.Balance.MinorUnits()),
		)

		if req.idempotencyKey != "" {
			existing, err := s.transactionRepo.GetByIdempotencyKey(ctx, tx, req.idempotencyKey)
			switch {
			case err == nil:
				if !existing.Matches(req.accountID, req.kind, req.amount) {
					return models.ErrIdempotencyKeyReused
				}
				result = existing
				replayed = true
				return nil
			case !errors.Is(err, repositories.ErrTransactionNotFound):
				return classify("lookup idempotency key", err)
			}
		}

		if err := validation.CheckSufficiency(req.kind, req.amount, account.Balance); err != nil {
			return err
		}

		newBalance, err := account.Apply(req.kind, req.amount)
		if err != nil {
			return err
		}
		s.audit.LogTransactionStateChange(ctx, requestID, StateComputed,
			slog.Int64("new_balance_minor_units", newBalance.MinorUnits()),
		)

		entry := &models.Transaction{
			Amount:       req.amount,
			Kind:         req.kind,
			AccountID:    req.accountID,
			Description:  req.description,
			BalanceAfter: newBalance,
		}
		if req.idempotencyKey != "" {
			key := req.idempotencyKey
			entry.IdempotencyKey = &key
		}

		if err := s.transactionRepo.Append(ctx, tx, entry); err != nil {
			if errors.Is(err, repositories.ErrDuplicateIdempotencyKey) {
				return models.ErrIdempotencyKeyReused
			}
			return classify("append transaction", err)
		}

		if err := s.accountRepo.PersistBalance(ctx, tx, req.accountID, account.Balance, newBalance); err != nil {
			return classify("persist balance", err)
		}

		oldBalance = account.Balance
		result = entry
		return nil
	})

	s.metrics.RecordProcessingTime(MetricLedgerDuration, time.Since(start))

	if err != nil {
		err = classify("execute transaction", err)
		s.abort(ctx, requestID, req.kind, err)
		return nil, err
	}

	if replayed {
		s.audit.LogIdempotentReplay(ctx, req.idempotencyKey, result.ID)
		s.metrics.IncrementCounter(MetricLedgerTransaction, map[string]string{
			"kind":    req.kind.String(),
			"outcome": "replayed",
		})
		return result, nil
	}

	s.audit.LogTransactionStateChange(ctx, requestID, StatePersisted,
		slog.String("transaction_id", result.ID.String()),
	)
	s.audit.LogBalanceUpdate(ctx, req.accountID, oldBalance, result.BalanceAfter, result.ID)
	s.metrics.IncrementCounter(MetricLedgerTransaction, map[string]string{
		"kind":    req.kind.String(),
		"outcome": "committed",
	})

	return result, nil
}

func (s *ledgerService) abort(ctx context.Context, requestID uuid.UUID, kind models.TransactionKind, err error) {
	s.audit.LogTransactionStateChange(ctx, requestID, StateAborted, slog.String("error", err.Error()))

	outcome := "rejected"
	if errors.Is(err, models.ErrPersistence) {
		outcome = "failed"
		s.logger.ErrorContext(ctx, "ledger transaction failed",
			"request_id", requestID.String(),
			"error", err,
		)
	}

	s.metrics.IncrementCounter(MetricLedgerTransaction, map[string]string{
		"kind":    kind.String(),
		"outcome": outcome,
	})
}

// ListTransactions returns the newest journal entries of an account
func (s *ledgerService) ListTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error) {
	id, err := validation.ParseIdentifier(accountID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return nil, classify("get account", err)
	}

	transactions, err := s.transactionRepo.ListByAccount(ctx, id, limit)
	if err != nil {
		return nil, classify("list transactions", err)
	}

	return transactions, nil
}

// ReconcileAccount recomputes the balance from the journal. Accounts are
// only mutated through the engine, so any drift points at a defect or a
// write that bypassed it.
func (s *ledgerService) ReconcileAccount(ctx context.Context, accountID string) (*Reconciliation, error) {
	id, err := validation.ParseIdentifier(accountID)
	if err != nil {
		return nil, err
	}

	result := &Reconciliation{AccountID: id}

	err = s.uow.Execute(ctx, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FetchForUpdate(ctx, tx, id)
		if err != nil {
			return classify("fetch account", err)
		}
		result.Balance = account.Balance

		sum, err := s.transactionRepo.SumByAccount(ctx, tx, id)
		if err != nil {
			return classify("sum journal", err)
		}
		result.JournalSum = sum
		return nil
	})
	if err != nil {
		return nil, classify("reconcile account", err)
	}

	s.metrics.RecordGauge(MetricReconciliationDrift, float64(result.Drift()), nil)
	if result.Consistent() {
		s.metrics.IncrementCounter(MetricReconciliation, map[string]string{"result": "consistent"})
	} else {
		s.metrics.IncrementCounter(MetricReconciliation, map[string]string{"result": "drift"})
		s.logger.WarnContext(ctx, "ledger drift detected",
			"account_id", id.String(),
			"balance_minor_units", result.Balance.MinorUnits(),
			"journal_sum_minor_units", result.JournalSum.MinorUnits(),
			"drift_minor_units", result.Drift().MinorUnits(),
		)
	}

	return result, nil
}

// classify keeps domain errors as they are and folds everything else into
// the persistence class
func classify(op string, err error) error {
	if models.IsDomainError(err) || errors.Is(err, models.ErrPersistence) || errors.Is(err, models.ErrCredentialHashing) {
		return err
	}
	return models.Persistence(op, err)
}
