package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-control/internal/dto"
	"finance-control/internal/errors"
	"finance-control/internal/models"
	"finance-control/internal/services"
	"finance-control/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type FinanceControlHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	ctrl         *gomock.Controller
	mockUsers    *service_mocks.MockUserServiceInterface
	mockAccounts *service_mocks.MockAccountServiceInterface
	mockLedger   *service_mocks.MockLedgerServiceInterface
	handler      *FinanceControlHandler
	traceID      string
}

func TestFinanceControlHandlerSuite(t *testing.T) {
	suite.Run(t, new(FinanceControlHandlerTestSuite))
}

func (s *FinanceControlHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.mockAccounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.mockLedger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewFinanceControlHandler(s.mockUsers, s.mockAccounts, s.mockLedger)
	s.traceID = uuid.New().String()
}

func (s *FinanceControlHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// call invokes fn with body posted to the procedure path
func (s *FinanceControlHandlerTestSuite) call(fn echo.HandlerFunc, procedure, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, ProcedurePath(procedure), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, s.traceID)

	s.Require().NoError(fn(c))
	return rec
}

func (s *FinanceControlHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.traceID, response.Error.TraceID)
	return response
}

func (s *FinanceControlHandlerTestSuite) TestRegisterUser_Success() {
	userID := uuid.New()
	email := gofakeit.Email()

	s.mockUsers.EXPECT().
		RegisterUser(gomock.Any(), services.RegisterUserInput{Name: "Ana", Email: email, Password: "correct-horse"}).
		Return(&models.User{ID: userID, Name: "Ana", Email: email}, nil)

	body := fmt.Sprintf(`{"name":"Ana","email":%q,"password":"correct-horse"}`, email)
	rec := s.call(s.handler.RegisterUser, ProcedureRegisterUser, body)

	s.Equal(http.StatusOK, rec.Code)
	var response dto.RegisterUserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(userID.String(), response.UserID)
}

func (s *FinanceControlHandlerTestSuite) TestRegisterUser_ValidationFailures() {
	testCases := []struct {
		name string
		body string
		code errors.ErrorCode
	}{
		{"missing name", `{"email":"ana@example.com","password":"correct-horse"}`, errors.ValidationRequiredField},
		{"bad email", `{"name":"Ana","email":"not-an-email","password":"correct-horse"}`, errors.ValidationInvalidEmail},
		{"malformed body", `{"name":`, errors.ValidationMalformedBody},
		{"wrong field type", `{"name":42}`, errors.ValidationMalformedBody},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.call(s.handler.RegisterUser, ProcedureRegisterUser, tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(tc.code), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *FinanceControlHandlerTestSuite) TestRegisterUser_EmailTaken() {
	s.mockUsers.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, models.ErrEmailTaken)

	rec := s.call(s.handler.RegisterUser, ProcedureRegisterUser, `{"name":"Ana","email":"ana@example.com","password":"correct-horse"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.UserEmailTaken), s.decodeError(rec).Error.Code)
}

func (s *FinanceControlHandlerTestSuite) TestCreateBankAccount_Success() {
	userID := uuid.New()
	accountID := uuid.New()

	s.mockAccounts.EXPECT().
		CreateBankAccount(gomock.Any(), services.CreateBankAccountInput{
			UserID:         userID.String(),
			Name:           "Savings",
			AccountType:    "INVESTMENT",
			InitialBalance: 10000,
		}).
		Return(&models.BankAccount{ID: accountID, UserID: userID, Kind: models.AccountKindInvestment, Balance: 10000}, nil)

	body := fmt.Sprintf(`{"user_id":%q,"name":"Savings","account_type":"INVESTMENT","initial_balance":10000}`, userID)
	rec := s.call(s.handler.CreateBankAccount, ProcedureCreateBankAccount, body)

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CreateBankAccountResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(accountID.String(), response.AccountID)
}

func (s *FinanceControlHandlerTestSuite) TestCreateBankAccount_RejectedBeforeService() {
	userID := uuid.New().String()
	testCases := []struct {
		name string
		body string
		code errors.ErrorCode
	}{
		{"lowercase type", fmt.Sprintf(`{"user_id":%q,"name":"A","account_type":"checking"}`, userID), errors.AccountInvalidType},
		{"unknown type", fmt.Sprintf(`{"user_id":%q,"name":"A","account_type":"CRYPTO"}`, userID), errors.AccountInvalidType},
		{"malformed user id", `{"user_id":"42","name":"A","account_type":"CASH"}`, errors.ValidationInvalidIdentifier},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.call(s.handler.CreateBankAccount, ProcedureCreateBankAccount, tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(tc.code), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *FinanceControlHandlerTestSuite) TestCreateBankAccount_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{"unknown user", models.ErrUserNotFound, http.StatusNotFound, errors.UserNotFound},
		{"negative balance", models.ErrInvalidInitialBalance, http.StatusBadRequest, errors.AccountInvalidInitialBalance},
		{"storage", models.Persistence("create account", fmt.Errorf("connection reset")), http.StatusInternalServerError, errors.SystemDatabaseError},
	}

	body := fmt.Sprintf(`{"user_id":%q,"name":"A","account_type":"CASH","initial_balance":-1}`, uuid.New())
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockAccounts.EXPECT().CreateBankAccount(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.call(s.handler.CreateBankAccount, ProcedureCreateBankAccount, body)

			s.Equal(tc.status, rec.Code)
			response := s.decodeError(rec)
			s.Equal(string(tc.code), response.Error.Code)
			if tc.status >= http.StatusInternalServerError {
				s.NotContains(rec.Body.String(), "connection reset")
			}
		})
	}
}

func (s *FinanceControlHandlerTestSuite) TestExecuteTransaction_Success() {
	accountID := uuid.New()
	txnID := uuid.New()
	description := "rent"

	s.mockLedger.EXPECT().
		ExecuteTransaction(gomock.Any(), services.ExecuteTransactionInput{
			AccountID:      accountID.String(),
			Kind:           models.TransactionCodeOutcome,
			Amount:         3000,
			Description:    &description,
			IdempotencyKey: "rent-2026-10",
		}).
		Return(&models.Transaction{ID: txnID, AccountID: accountID, Kind: models.TransactionKindOutcome, Amount: 3000, BalanceAfter: 7000}, nil)

	body := fmt.Sprintf(`{"account_id":%q,"transaction_type":1,"amount":3000,"description":"rent","idempotency_key":"rent-2026-10"}`, accountID)
	rec := s.call(s.handler.ExecuteTransaction, ProcedureExecuteTransaction, body)

	s.Equal(http.StatusOK, rec.Code)
	var response dto.ExecuteTransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(txnID.String(), response.TransactionID)
}

func (s *FinanceControlHandlerTestSuite) TestExecuteTransaction_IncomeCodeZeroIsAccepted() {
	accountID := uuid.New()

	s.mockLedger.EXPECT().
		ExecuteTransaction(gomock.Any(), services.ExecuteTransactionInput{
			AccountID: accountID.String(),
			Kind:      models.TransactionCodeIncome,
			Amount:    2500,
		}).
		Return(&models.Transaction{ID: uuid.New()}, nil)

	body := fmt.Sprintf(`{"account_id":%q,"transaction_type":0,"amount":2500}`, accountID)
	rec := s.call(s.handler.ExecuteTransaction, ProcedureExecuteTransaction, body)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *FinanceControlHandlerTestSuite) TestExecuteTransaction_RejectedBeforeService() {
	accountID := uuid.New().String()
	testCases := []struct {
		name string
		body string
		code errors.ErrorCode
	}{
		{"missing type", fmt.Sprintf(`{"account_id":%q,"amount":100}`, accountID), errors.ValidationRequiredField},
		{"unknown type", fmt.Sprintf(`{"account_id":%q,"transaction_type":7,"amount":100}`, accountID), errors.TransactionInvalidType},
		{"zero amount", fmt.Sprintf(`{"account_id":%q,"transaction_type":0,"amount":0}`, accountID), errors.TransactionInvalidAmount},
		{"negative amount", fmt.Sprintf(`{"account_id":%q,"transaction_type":1,"amount":-5}`, accountID), errors.TransactionInvalidAmount},
		{"fractional amount", fmt.Sprintf(`{"account_id":%q,"transaction_type":1,"amount":10.5}`, accountID), errors.ValidationMalformedBody},
		{"malformed account id", `{"account_id":"abc","transaction_type":1,"amount":5}`, errors.ValidationInvalidIdentifier},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.call(s.handler.ExecuteTransaction, ProcedureExecuteTransaction, tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(tc.code), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *FinanceControlHandlerTestSuite) TestExecuteTransaction_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{"insufficient funds", fmt.Errorf("%w: balance 7000, requested 8000", models.ErrInsufficientFunds), http.StatusUnprocessableEntity, errors.TransactionInsufficientFunds},
		{"unknown account", models.ErrAccountNotFound, http.StatusNotFound, errors.AccountNotFound},
		{"key reused", models.ErrIdempotencyKeyReused, http.StatusBadRequest, errors.TransactionIdempotencyKeyReused},
		{"storage", models.Persistence("persist balance", fmt.Errorf("deadlock detected")), http.StatusInternalServerError, errors.SystemDatabaseError},
	}

	body := fmt.Sprintf(`{"account_id":%q,"transaction_type":1,"amount":8000}`, uuid.New())
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockLedger.EXPECT().ExecuteTransaction(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.call(s.handler.ExecuteTransaction, ProcedureExecuteTransaction, body)

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.code), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *FinanceControlHandlerTestSuite) TestGetBankAccount() {
	account := &models.BankAccount{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Main",
		Kind:      models.AccountKindChecking,
		Balance:   9500,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s.mockAccounts.EXPECT().GetBankAccount(gomock.Any(), account.ID.String()).Return(account, nil)

	rec := s.call(s.handler.GetBankAccount, ProcedureGetBankAccount, fmt.Sprintf(`{"account_id":%q}`, account.ID))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.BankAccountResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(9500), response.Balance)
	s.Equal("95.00", response.BalanceDisplay)
	s.Equal("CHECKING", response.AccountType)
}

func (s *FinanceControlHandlerTestSuite) TestListTransactions() {
	accountID := uuid.New()
	transactions := []models.Transaction{
		{ID: uuid.New(), AccountID: accountID, Kind: models.TransactionKindIncome, Amount: 2500, BalanceAfter: 9500},
		{ID: uuid.New(), AccountID: accountID, Kind: models.TransactionKindOutcome, Amount: 3000, BalanceAfter: 7000},
	}
	s.mockLedger.EXPECT().ListTransactions(gomock.Any(), accountID.String(), 2).Return(transactions, nil)

	rec := s.call(s.handler.ListTransactions, ProcedureListTransactions, fmt.Sprintf(`{"account_id":%q,"limit":2}`, accountID))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Transactions, 2)
	s.Equal(models.TransactionCodeIncome, response.Transactions[0].TransactionType)
	s.Equal("25.00", response.Transactions[0].AmountDisplay)
	s.Equal(models.TransactionCodeOutcome, response.Transactions[1].TransactionType)
}

func (s *FinanceControlHandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	rec := s.call(s.handler.ListTransactions, ProcedureListTransactions, fmt.Sprintf(`{"account_id":%q,"limit":5000}`, uuid.New()))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationOutOfRange), s.decodeError(rec).Error.Code)
}
