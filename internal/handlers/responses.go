package handlers

import (
	"log/slog"
	"net/http"

	"finance-control/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses go through three helpers:
//
// SendError for a known code (validation, unknown procedure, auth).
// SendServiceError for anything a service returned; the code follows the
// error class and 5xx bodies never carry the cause.
// SendSystemError for failures outside the services.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError maps a service error onto its code and status
func SendServiceError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse := errors.FromError(err, traceID)

	if errorResponse.IsServerError() {
		slog.ErrorContext(c.Request().Context(), "Service call failed",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
	}

	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message and logs the cause
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "Internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
