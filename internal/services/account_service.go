package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finance-control/internal/database"
	"finance-control/internal/models"
	"finance-control/internal/repositories"
	"finance-control/internal/validation"

	"gorm.io/gorm"
)

const MaxAccountNameLength = 100

var (
	ErrAccountNameRequired = fmt.Errorf("%w: account name is required", models.ErrInvalidArgument)
	ErrAccountNameTooLong  = fmt.Errorf("%w: account name must not exceed %d characters", models.ErrInvalidArgument, MaxAccountNameLength)
)

// CreateBankAccountInput carries an unvalidated account opening request.
// InitialBalance is in minor units.
type CreateBankAccountInput struct {
	UserID         string
	Name           string
	AccountType    string
	InitialBalance int64
}

type accountService struct {
	uow             database.UnitOfWork
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	audit           AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewAccountService(
	uow database.UnitOfWork,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		uow:             uow,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		audit:           audit,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateBankAccount opens an account for an existing user. A positive
// opening balance is journaled as an INCOME entry in the same unit of work
// so the journal always sums to the stored balance.
func (s *accountService) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*models.BankAccount, error) {
	userID, err := validation.ParseIdentifier(input.UserID)
	if err != nil {
		return nil, err
	}

	kind, err := validation.ParseAccountKind(input.AccountType)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrAccountNameRequired
	}
	if err := validation.CheckText(name, MaxAccountNameLength, ErrAccountNameTooLong); err != nil {
		return nil, err
	}

	initial := models.Money(input.InitialBalance)
	if err := validation.CheckInitialBalance(initial); err != nil {
		return nil, err
	}

	account := &models.BankAccount{
		Name:    name,
		Kind:    kind,
		Balance: initial,
		UserID:  userID,
	}

	err = s.uow.Execute(ctx, func(tx *gorm.DB) error {
		if _, err := s.userRepo.GetByID(ctx, tx, userID); err != nil {
			return classify("get user", err)
		}

		if err := s.accountRepo.Create(ctx, tx, account); err != nil {
			return classify("create account", err)
		}

		if !initial.IsPositive() {
			return nil
		}

		description := models.InitialDepositDescription
		deposit := &models.Transaction{
			Amount:       initial,
			Kind:         models.TransactionKindIncome,
			AccountID:    account.ID,
			Description:  &description,
			BalanceAfter: initial,
		}
		if err := s.transactionRepo.Append(ctx, tx, deposit); err != nil {
			return classify("append initial deposit", err)
		}
		return nil
	})
	if err != nil {
		err = classify("create bank account", err)
		if !models.IsDomainError(err) {
			s.logger.ErrorContext(ctx, "failed to open bank account", "user_id", userID.String(), "error", err)
		}
		return nil, err
	}

	s.audit.LogAccountOpened(ctx, account.ID, userID, kind, initial)
	s.metrics.IncrementCounter(MetricAccountOpened, map[string]string{"account_type": kind.String()})

	return account, nil
}

// GetBankAccount returns an account with its current balance
func (s *accountService) GetBankAccount(ctx context.Context, accountID string) (*models.BankAccount, error) {
	id, err := validation.ParseIdentifier(accountID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, classify("get account", err)
	}
	return account, nil
}
