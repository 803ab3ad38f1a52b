package middleware

import (
	"finance-control/internal/handlers"
	"finance-control/internal/services"

	"github.com/labstack/echo/v4"
)

// CountRequests increments counter once for every FinanceControl call that
// reaches its handler. It sits behind Authorize, so rejected callers are not
// counted. Admin procedures, health checks, /metrics and unknown paths are
// not counted either.
func CountRequests(counter services.RequestCounterInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if procedure, ok := handlers.ProcedureFromPath(c.Request().URL.Path); ok && handlers.IsCountedProcedure(procedure) {
				counter.Increment(procedure)
			}
			return next(c)
		}
	}
}
