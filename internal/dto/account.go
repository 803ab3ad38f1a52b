package dto

import (
	"time"

	"finance-control/internal/models"
)

// CreateBankAccountRequest opens an account. InitialBalance is in minor
// units; range checks happen in the service.
type CreateBankAccountRequest struct {
	UserID         string `json:"user_id" validate:"required,identifier"`
	Name           string `json:"name" validate:"required,max=100"`
	AccountType    string `json:"account_type" validate:"required,account_type"`
	InitialBalance int64  `json:"initial_balance"`
}

type CreateBankAccountResponse struct {
	AccountID string `json:"account_id"`
}

type GetBankAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,identifier"`
}

// BankAccountResponse exposes the balance both as exact minor units and as
// a fixed two-decimal string
type BankAccountResponse struct {
	AccountID      string    `json:"account_id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	AccountType    string    `json:"account_type"`
	Balance        int64     `json:"balance"`
	BalanceDisplay string    `json:"balance_display"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToBankAccountResponse(account *models.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		AccountID:      account.ID.String(),
		UserID:         account.UserID.String(),
		Name:           account.Name,
		AccountType:    account.Kind.String(),
		Balance:        account.Balance.MinorUnits(),
		BalanceDisplay: account.Balance.String(),
		CreatedAt:      account.CreatedAt,
	}
}
