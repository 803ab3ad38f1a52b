package validation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-control/internal/models"
)

func TestParseAccountKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    models.AccountKind
		wantErr bool
	}{
		{raw: "CHECKING", want: models.AccountKindChecking},
		{raw: "INVESTMENT", want: models.AccountKindInvestment},
		{raw: "CASH", want: models.AccountKindCash},
		{raw: "checking", wantErr: true},
		{raw: "SAVINGS", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAccountKind(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				assert.ErrorIs(t, err, models.ErrInvalidAccountKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind(0)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionKindIncome, kind)

	kind, err = ParseTransactionKind(1)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionKindOutcome, kind)

	for _, code := range []int32{-1, 2, 99} {
		_, err := ParseTransactionKind(code)
		assert.ErrorIs(t, err, models.ErrInvalidTransactionKind, "code %d", code)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	}
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount(1))
	assert.NoError(t, CheckAmount(10000))
	assert.ErrorIs(t, CheckAmount(0), models.ErrInvalidArgument)
	assert.ErrorIs(t, CheckAmount(-5), models.ErrInvalidArgument)
}

func TestCheckSufficiency(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.TransactionKind
		amount  models.Money
		balance models.Money
		wantErr bool
	}{
		{name: "outcome within balance", kind: models.TransactionKindOutcome, amount: 3000, balance: 10000},
		{name: "outcome equal to balance", kind: models.TransactionKindOutcome, amount: 10000, balance: 10000},
		{name: "outcome over balance", kind: models.TransactionKindOutcome, amount: 8000, balance: 7000, wantErr: true},
		{name: "income on empty account", kind: models.TransactionKindIncome, amount: 8000, balance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSufficiency(tt.kind, tt.amount, tt.balance)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInsufficientFunds)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckInitialBalance(t *testing.T) {
	assert.NoError(t, CheckInitialBalance(0))
	assert.NoError(t, CheckInitialBalance(100))
	assert.ErrorIs(t, CheckInitialBalance(-1), models.ErrInvalidInitialBalance)
}

func TestParseIdentifier(t *testing.T) {
	id := uuid.New()
	got, err := ParseIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseIdentifier("not-a-uuid")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCheckText(t *testing.T) {
	tooLong := errors.New("too long")

	tests := []struct {
		name  string
		value string
		err   error
	}{
		{"empty", "", nil},
		{"ascii at limit", "abcde", nil},
		{"multibyte at limit", "ñandú", nil},
		{"over limit", "abcdef", tooLong},
		{"multibyte over limit", "ñandúes", tooLong},
		{"invalid utf-8", "ab\xffcd", models.ErrMalformedText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckText(tt.value, 5, tt.err)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
	assert.ErrorIs(t, CheckText("\xff", 5, tooLong), models.ErrInvalidArgument)
}
