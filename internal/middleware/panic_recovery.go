package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finance-control/internal/errors"
	"finance-control/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking procedure into a SYSTEM_001 response. A
// panic inside a unit of work has already rolled it back by the time the
// deferred recover runs.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				procedure, _ := handlers.ProcedureFromPath(c.Request().URL.Path)
				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"procedure", procedure,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
					err = sendErr
				}
			}()

			return next(c)
		}
	}
}
