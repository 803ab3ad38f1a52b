package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"finance-control/internal/models"
	"finance-control/internal/repositories"
	"finance-control/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// inlineUnitOfWork runs fn without a database transaction
type inlineUnitOfWork struct {
	calls int
}

func (u *inlineUnitOfWork) Execute(_ context.Context, fn func(tx *gorm.DB) error) error {
	u.calls++
	return fn(nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAccountRepo *repository_mocks.MockAccountRepositoryInterface
	mockTxRepo      *repository_mocks.MockTransactionRepositoryInterface
	uow             *inlineUnitOfWork
	service         LedgerServiceInterface
	ctx             context.Context
	account         *models.BankAccount
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.mockTxRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.uow = &inlineUnitOfWork{}
	s.ctx = context.Background()

	logger := discardLogger()
	s.service = NewLedgerService(
		s.uow,
		s.mockAccountRepo,
		s.mockTxRepo,
		NewAuditLogger(logger),
		NewPrometheusMetrics(prometheus.NewRegistry()),
		logger,
		50,
	)

	s.account = &models.BankAccount{
		ID:      uuid.New(),
		Name:    gofakeit.Company(),
		Kind:    models.AccountKindChecking,
		Balance: 10000,
		UserID:  uuid.New(),
	}
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) input(kind int32, amount int64) ExecuteTransactionInput {
	return ExecuteTransactionInput{
		AccountID: s.account.ID.String(),
		Kind:      kind,
		Amount:    amount,
	}
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_InvalidInputNeverTouchesStorage() {
	tooLongKey := gofakeit.LetterN(MaxIdempotencyKeyLength + 1)
	tooLongDescription := gofakeit.LetterN(MaxDescriptionLength + 1)
	malformedDescription := "caf\xe9"

	tests := []struct {
		name  string
		input ExecuteTransactionInput
		err   error
	}{
		{"unknown kind", s.input(2, 100), models.ErrInvalidTransactionKind},
		{"negative kind", s.input(-1, 100), models.ErrInvalidTransactionKind},
		{"zero amount", s.input(models.TransactionCodeIncome, 0), models.ErrInvalidAmount},
		{"negative amount", s.input(models.TransactionCodeOutcome, -5), models.ErrInvalidAmount},
		{"malformed account id", ExecuteTransactionInput{AccountID: "not-a-uuid", Kind: 0, Amount: 1}, models.ErrInvalidIdentifier},
		{"idempotency key too long", ExecuteTransactionInput{AccountID: s.account.ID.String(), Amount: 1, IdempotencyKey: tooLongKey}, ErrIdempotencyKeyTooLong},
		{"description too long", ExecuteTransactionInput{AccountID: s.account.ID.String(), Amount: 1, Description: &tooLongDescription}, ErrDescriptionTooLong},
		{"description not utf-8", ExecuteTransactionInput{AccountID: s.account.ID.String(), Amount: 1, Description: &malformedDescription}, models.ErrMalformedText},
		{"idempotency key not utf-8", ExecuteTransactionInput{AccountID: s.account.ID.String(), Amount: 1, IdempotencyKey: "\xff\xfe"}, models.ErrMalformedText},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.service.ExecuteTransaction(s.ctx, tt.input)

			s.Nil(result)
			s.ErrorIs(err, tt.err)
			s.ErrorIs(err, models.ErrInvalidArgument)
		})
	}
	s.Zero(s.uow.calls)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_LimitsCountCharacters() {
	description := strings.Repeat("é", MaxDescriptionLength)
	key := strings.Repeat("ü", MaxIdempotencyKeyLength)

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().GetByIdempotencyKey(s.ctx, gomock.Nil(), key).Return(nil, repositories.ErrTransactionNotFound)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, txn *models.Transaction) error {
			s.Equal(description, txn.DescriptionOrEmpty())
			return nil
		})
	s.mockAccountRepo.EXPECT().PersistBalance(s.ctx, gomock.Nil(), s.account.ID, models.Money(10000), models.Money(10100)).Return(nil)

	input := s.input(models.TransactionCodeIncome, 100)
	input.Description = &description
	input.IdempotencyKey = key

	_, err := s.service.ExecuteTransaction(s.ctx, input)

	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_AccountNotFound() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(nil, repositories.ErrAccountNotFound)

	result, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeIncome, 100))

	s.Nil(result)
	s.ErrorIs(err, models.ErrNotFound)
	s.ErrorIs(err, models.ErrAccountNotFound)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_Income() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, txn *models.Transaction) error {
			s.Equal(models.TransactionKindIncome, txn.Kind)
			s.Equal(models.Money(2500), txn.Amount)
			s.Equal(models.Money(12500), txn.BalanceAfter)
			s.Equal(s.account.ID, txn.AccountID)
			s.Nil(txn.IdempotencyKey)
			txn.ID = uuid.New()
			return nil
		})
	s.mockAccountRepo.EXPECT().PersistBalance(s.ctx, gomock.Nil(), s.account.ID, models.Money(10000), models.Money(12500)).Return(nil)

	result, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeIncome, 2500))

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, result.ID)
	s.Equal(models.Money(12500), result.BalanceAfter)
	s.Equal(1, s.uow.calls)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_OutcomeDrainsToZero() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().PersistBalance(s.ctx, gomock.Nil(), s.account.ID, models.Money(10000), models.Money(0)).Return(nil)

	result, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeOutcome, 10000))

	s.Require().NoError(err)
	s.Equal(models.Money(0), result.BalanceAfter)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_InsufficientFunds() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)

	result, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeOutcome, 10001))

	s.Nil(result)
	s.ErrorIs(err, models.ErrInsufficientFunds)
	s.False(errors.Is(err, models.ErrPersistence))
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_IdempotentReplay() {
	key := gofakeit.UUID()
	stored := &models.Transaction{
		ID:           uuid.New(),
		Amount:       3000,
		Kind:         models.TransactionKindOutcome,
		AccountID:    s.account.ID,
		BalanceAfter: 7000,
	}

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().GetByIdempotencyKey(s.ctx, gomock.Nil(), key).Return(stored, nil)

	input := s.input(models.TransactionCodeOutcome, 3000)
	input.IdempotencyKey = key
	result, err := s.service.ExecuteTransaction(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(stored.ID, result.ID)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_IdempotencyKeyReusedWithDifferentPayload() {
	key := gofakeit.UUID()
	stored := &models.Transaction{
		ID:        uuid.New(),
		Amount:    3000,
		Kind:      models.TransactionKindOutcome,
		AccountID: s.account.ID,
	}

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().GetByIdempotencyKey(s.ctx, gomock.Nil(), key).Return(stored, nil)

	input := s.input(models.TransactionCodeOutcome, 3001)
	input.IdempotencyKey = key
	result, err := s.service.ExecuteTransaction(s.ctx, input)

	s.Nil(result)
	s.ErrorIs(err, models.ErrIdempotencyKeyReused)
	s.ErrorIs(err, models.ErrInvalidArgument)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_NewIdempotencyKeyIsRecorded() {
	key := "  order-42  "

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().GetByIdempotencyKey(s.ctx, gomock.Nil(), "order-42").Return(nil, repositories.ErrTransactionNotFound)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, txn *models.Transaction) error {
			s.Require().NotNil(txn.IdempotencyKey)
			s.Equal("order-42", *txn.IdempotencyKey)
			return nil
		})
	s.mockAccountRepo.EXPECT().PersistBalance(s.ctx, gomock.Nil(), s.account.ID, models.Money(10000), models.Money(10100)).Return(nil)

	input := s.input(models.TransactionCodeIncome, 100)
	input.IdempotencyKey = key
	_, err := s.service.ExecuteTransaction(s.ctx, input)

	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_DuplicateKeyRaceOnAppend() {
	key := gofakeit.UUID()

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().GetByIdempotencyKey(s.ctx, gomock.Nil(), key).Return(nil, repositories.ErrTransactionNotFound)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).Return(repositories.ErrDuplicateIdempotencyKey)

	input := s.input(models.TransactionCodeIncome, 100)
	input.IdempotencyKey = key
	_, err := s.service.ExecuteTransaction(s.ctx, input)

	s.ErrorIs(err, models.ErrIdempotencyKeyReused)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_AppendFailureIsPersistence() {
	dbErr := errors.New("connection reset")

	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).Return(dbErr)

	result, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeIncome, 100))

	s.Nil(result)
	s.ErrorIs(err, models.ErrPersistence)
	s.ErrorIs(err, dbErr)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_BalanceConflictIsPersistence() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().Append(s.ctx, gomock.Nil(), gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().PersistBalance(s.ctx, gomock.Nil(), s.account.ID, gomock.Any(), gomock.Any()).Return(repositories.ErrBalanceConflict)

	_, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeOutcome, 100))

	s.ErrorIs(err, models.ErrPersistence)
	s.ErrorIs(err, repositories.ErrBalanceConflict)
}

func (s *LedgerServiceTestSuite) TestExecuteTransaction_IncomeOverflow() {
	s.account.Balance = models.Money(1<<63 - 1)
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)

	_, err := s.service.ExecuteTransaction(s.ctx, s.input(models.TransactionCodeIncome, 1))

	s.ErrorIs(err, models.ErrAmountOverflow)
}

func (s *LedgerServiceTestSuite) TestListTransactions_ClampsLimit() {
	entries := []models.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}
	s.mockAccountRepo.EXPECT().GetByID(s.ctx, s.account.ID).Return(s.account, nil).Times(2)
	s.mockTxRepo.EXPECT().ListByAccount(s.ctx, s.account.ID, 50).Return(entries, nil)
	s.mockTxRepo.EXPECT().ListByAccount(s.ctx, s.account.ID, 10).Return(entries[:1], nil)

	all, err := s.service.ListTransactions(s.ctx, s.account.ID.String(), 0)
	s.Require().NoError(err)
	s.Len(all, 2)

	some, err := s.service.ListTransactions(s.ctx, s.account.ID.String(), 10)
	s.Require().NoError(err)
	s.Len(some, 1)
}

func (s *LedgerServiceTestSuite) TestListTransactions_UnknownAccount() {
	s.mockAccountRepo.EXPECT().GetByID(s.ctx, s.account.ID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.ListTransactions(s.ctx, s.account.ID.String(), 5)

	s.ErrorIs(err, models.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestReconcileAccount() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil).Times(2)
	s.mockTxRepo.EXPECT().SumByAccount(s.ctx, gomock.Nil(), s.account.ID).Return(models.Money(10000), nil)
	s.mockTxRepo.EXPECT().SumByAccount(s.ctx, gomock.Nil(), s.account.ID).Return(models.Money(9000), nil)

	consistent, err := s.service.ReconcileAccount(s.ctx, s.account.ID.String())
	s.Require().NoError(err)
	s.True(consistent.Consistent())

	drifted, err := s.service.ReconcileAccount(s.ctx, s.account.ID.String())
	s.Require().NoError(err)
	s.False(drifted.Consistent())
	s.Equal(models.Money(1000), drifted.Drift())
}

func (s *LedgerServiceTestSuite) TestReconcileAccount_SumFailure() {
	s.mockAccountRepo.EXPECT().FetchForUpdate(s.ctx, gomock.Nil(), s.account.ID).Return(s.account, nil)
	s.mockTxRepo.EXPECT().SumByAccount(s.ctx, gomock.Nil(), s.account.ID).Return(models.Money(0), errors.New("boom"))

	_, err := s.service.ReconcileAccount(s.ctx, s.account.ID.String())

	s.ErrorIs(err, models.ErrPersistence)
}
