package handlers

import (
	"net/http"

	"finance-control/internal/dto"
	"finance-control/internal/services"

	"github.com/labstack/echo/v4"
)

// FinanceControlHandler serves the FinanceControl procedures
type FinanceControlHandler struct {
	users    services.UserServiceInterface
	accounts services.AccountServiceInterface
	ledger   services.LedgerServiceInterface
}

// NewFinanceControlHandler creates a new FinanceControl handler
func NewFinanceControlHandler(
	users services.UserServiceInterface,
	accounts services.AccountServiceInterface,
	ledger services.LedgerServiceInterface,
) *FinanceControlHandler {
	return &FinanceControlHandler{
		users:    users,
		accounts: accounts,
		ledger:   ledger,
	}
}

// RegisterUser creates a user and returns its id
func (h *FinanceControlHandler) RegisterUser(c echo.Context) error {
	var req dto.RegisterUserRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	user, err := h.users.RegisterUser(c.Request().Context(), services.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RegisterUserResponse{UserID: user.ID.String()})
}

// CreateBankAccount opens an account for an existing user
func (h *FinanceControlHandler) CreateBankAccount(c echo.Context) error {
	var req dto.CreateBankAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	account, err := h.accounts.CreateBankAccount(c.Request().Context(), services.CreateBankAccountInput{
		UserID:         req.UserID,
		Name:           req.Name,
		AccountType:    req.AccountType,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreateBankAccountResponse{AccountID: account.ID.String()})
}

// ExecuteTransaction applies an INCOME or OUTCOME to an account
func (h *FinanceControlHandler) ExecuteTransaction(c echo.Context) error {
	var req dto.ExecuteTransactionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	txn, err := h.ledger.ExecuteTransaction(c.Request().Context(), services.ExecuteTransactionInput{
		AccountID:      req.AccountID,
		Kind:           *req.TransactionType,
		Amount:         req.Amount,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExecuteTransactionResponse{TransactionID: txn.ID.String()})
}

// GetBankAccount returns an account with its current balance
func (h *FinanceControlHandler) GetBankAccount(c echo.Context) error {
	var req dto.GetBankAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	account, err := h.accounts.GetBankAccount(c.Request().Context(), req.AccountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// ListTransactions returns the newest journal entries of an account
func (h *FinanceControlHandler) ListTransactions(c echo.Context) error {
	var req dto.ListTransactionsRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	transactions, err := h.ledger.ListTransactions(c.Request().Context(), req.AccountID, req.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}
