package server

import (
	"net"
	"net/http"

	"finance-control/internal/handlers"
	"finance-control/internal/middleware"
	"finance-control/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds procedure request bodies
const maxBodySize = "64K"

// Dependencies is everything the router wires into handlers and middleware
type Dependencies struct {
	Users    services.UserServiceInterface
	Accounts services.AccountServiceInterface
	Ledger   services.LedgerServiceInterface
	Counter  services.RequestCounterInterface
	Policy   services.AuthorizationPolicy
	Audit    services.AuditLoggerInterface
	Metrics  services.MetricsRecorderInterface
	Health   handlers.HealthChecker

	RateLimiter      *middleware.RateLimiter
	Gatherer         prometheus.Gatherer
	CORSAllowOrigins []string
	TrustedProxies   []*net.IPNet
}

// ipExtractor only believes X-Forwarded-For when the connection comes from
// one of the trusted proxies. With none configured the TCP peer is the
// client.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trusted {
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}

// NewRouter builds the echo instance serving every procedure plus /health
// and /metrics. Middleware order matters: the trace id comes first so every
// later log line and error body carries it, and calls are counted only after
// authorization lets them through.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.IPExtractor = ipExtractor(deps.TrustedProxies)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}
	e.Use(middleware.Authorize(deps.Policy, deps.Audit, deps.Metrics))
	e.Use(middleware.CountRequests(deps.Counter))

	health := handlers.NewHealthCheckHandler(deps.Health)
	e.GET("/health", health.HealthCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	financeControl := handlers.NewFinanceControlHandler(deps.Users, deps.Accounts, deps.Ledger)
	admin := handlers.NewAdminHandler(deps.Counter, deps.Ledger)

	routes := map[string]echo.HandlerFunc{
		handlers.ProcedureRegisterUser:       financeControl.RegisterUser,
		handlers.ProcedureCreateBankAccount:  financeControl.CreateBankAccount,
		handlers.ProcedureExecuteTransaction: financeControl.ExecuteTransaction,
		handlers.ProcedureGetBankAccount:     financeControl.GetBankAccount,
		handlers.ProcedureListTransactions:   financeControl.ListTransactions,
		handlers.ProcedureGetRequestCount:    admin.GetRequestCount,
		handlers.ProcedureReconcileAccount:   admin.ReconcileAccount,
	}
	for _, procedure := range handlers.Procedures {
		e.POST(handlers.ProcedurePath(procedure), routes[procedure])
	}

	return e
}
