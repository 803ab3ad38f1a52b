package handlers

import (
	"net/http"

	"finance-control/internal/dto"
	"finance-control/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the Admin procedures
type AdminHandler struct {
	counter services.RequestCounterInterface
	ledger  services.LedgerServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(counter services.RequestCounterInterface, ledger services.LedgerServiceInterface) *AdminHandler {
	return &AdminHandler{
		counter: counter,
		ledger:  ledger,
	}
}

// GetRequestCount returns how many FinanceControl calls the server has
// served since it started. Reading the count does not change it.
func (h *AdminHandler) GetRequestCount(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.GetRequestCountResponse{Count: h.counter.Count()})
}

// ReconcileAccount compares an account balance with its journal
func (h *AdminHandler) ReconcileAccount(c echo.Context) error {
	var req dto.ReconcileAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.ledger.ReconcileAccount(c.Request().Context(), req.AccountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReconcileAccountResponse{
		AccountID:  result.AccountID.String(),
		Balance:    result.Balance.MinorUnits(),
		JournalSum: result.JournalSum.MinorUnits(),
		Consistent: result.Consistent(),
	})
}
