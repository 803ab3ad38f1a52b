package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"finance-control/internal/errors"
	"finance-control/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler formats errors that escape the handlers, such as
// unknown procedures, wrong methods and oversized bodies, as standardized
// error responses
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var (
		errorResponse    *errors.ErrorResponse
		echoErr          *echo.HTTPError
		validationErrors validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &echoErr):
		opts := []errors.ErrorOption{}
		if message := fmt.Sprintf("%v", echoErr.Message); message != http.StatusText(echoErr.Code) {
			opts = append(opts, errors.WithMessage(message))
		}
		errorResponse = errors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID, opts...)
	case stderrors.As(err, &validationErrors):
		errorResponse = errors.NewValidationErrorFromList(validation.FormatErrors(validationErrors), traceID)
	default:
		errorResponse = errors.FromError(err, traceID)
	}

	httpStatus := errorResponse.GetHTTPStatus()
	if echoErr != nil {
		httpStatus = echoErr.Code
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes raised by echo itself
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return errors.ValidationMalformedBody
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.SystemUnknownProcedure
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
