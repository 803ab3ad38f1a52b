package dto

import (
	"time"

	"finance-control/internal/models"
)

// ExecuteTransactionRequest applies a movement. TransactionType is 0 for
// INCOME and 1 for OUTCOME; Amount is in minor units.
type ExecuteTransactionRequest struct {
	AccountID       string  `json:"account_id" validate:"required,identifier"`
	TransactionType *int32  `json:"transaction_type" validate:"required,transaction_type"`
	Amount          int64   `json:"amount" validate:"positive_amount"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IdempotencyKey  string  `json:"idempotency_key,omitempty" validate:"omitempty,max=255"`
}

type ExecuteTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

type ListTransactionsRequest struct {
	AccountID string `json:"account_id" validate:"required,identifier"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=1000"`
}

type TransactionResponse struct {
	TransactionID       string    `json:"transaction_id"`
	AccountID           string    `json:"account_id"`
	TransactionType     int32     `json:"transaction_type"`
	TransactionKind     string    `json:"transaction_kind"`
	Amount              int64     `json:"amount"`
	AmountDisplay       string    `json:"amount_display"`
	BalanceAfter        int64     `json:"balance_after"`
	BalanceAfterDisplay string    `json:"balance_after_display"`
	Description         string    `json:"description,omitempty"`
	IdempotencyKey      string    `json:"idempotency_key,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func ToTransactionResponse(txn *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		TransactionID:       txn.ID.String(),
		AccountID:           txn.AccountID.String(),
		TransactionType:     txn.Kind.Code(),
		TransactionKind:     txn.Kind.String(),
		Amount:              txn.Amount.MinorUnits(),
		AmountDisplay:       txn.Amount.String(),
		BalanceAfter:        txn.BalanceAfter.MinorUnits(),
		BalanceAfterDisplay: txn.BalanceAfter.String(),
		Description:         txn.DescriptionOrEmpty(),
		CreatedAt:           txn.CreatedAt,
	}
	if txn.IdempotencyKey != nil {
		response.IdempotencyKey = *txn.IdempotencyKey
	}
	return response
}

func ToListTransactionsResponse(transactions []models.Transaction) ListTransactionsResponse {
	response := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(&transactions[i]))
	}
	return response
}
