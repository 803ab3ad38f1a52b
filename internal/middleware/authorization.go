package middleware

import (
	stderrors "errors"

	"finance-control/internal/errors"
	"finance-control/internal/handlers"
	"finance-control/internal/services"

	"github.com/labstack/echo/v4"
)

// PrincipalContextKey holds the *services.Principal of an authorized call
const PrincipalContextKey = "principal"

// Authorize asks policy whether the caller may invoke the requested
// procedure. Paths outside the RPC prefix pass through.
func Authorize(
	policy services.AuthorizationPolicy,
	audit services.AuditLoggerInterface,
	metrics services.MetricsRecorderInterface,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			procedure, ok := handlers.ProcedureFromPath(c.Request().URL.Path)
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			principal, err := policy.Authorize(ctx, services.AuthorizationRequest{
				Procedure:     procedure,
				Authorization: header,
				RemoteAddr:    c.RealIP(),
			})
			if err == nil {
				c.Set(PrincipalContextKey, principal)
				return next(c)
			}

			audit.LogAuthorizationFailure(ctx, procedure, err.Error())
			metrics.IncrementCounter(services.MetricAuthorizationDenied, map[string]string{"procedure": procedure})

			switch {
			case stderrors.Is(err, services.ErrPermissionDenied):
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			case stderrors.Is(err, services.ErrUnauthenticated) && header == "":
				return handlers.SendError(c, errors.AuthMissingToken)
			case stderrors.Is(err, services.ErrUnauthenticated):
				return handlers.SendError(c, errors.AuthInvalidToken)
			default:
				return handlers.SendSystemError(c, err)
			}
		}
	}
}

// GetPrincipal returns the caller set by Authorize, or nil
func GetPrincipal(c echo.Context) *services.Principal {
	principal, _ := c.Get(PrincipalContextKey).(*services.Principal)
	return principal
}
