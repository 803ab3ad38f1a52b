package dto

type GetRequestCountResponse struct {
	Count uint64 `json:"count"`
}

type ReconcileAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,identifier"`
}

type ReconcileAccountResponse struct {
	AccountID  string `json:"account_id"`
	Balance    int64  `json:"balance"`
	JournalSum int64  `json:"journal_sum"`
	Consistent bool   `json:"consistent"`
}
