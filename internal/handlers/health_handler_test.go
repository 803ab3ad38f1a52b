package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-control/internal/database"
	"finance-control/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(context.Context) error {
	return s.err
}

func runHealthCheck(t *testing.T, checker HealthChecker) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, NewHealthCheckHandler(checker).HealthCheck(e.NewContext(req, rec)))
	return rec
}

func TestHealthCheck_Healthy(t *testing.T) {
	rec := runHealthCheck(t, database.SetupTestDB(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["time"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	rec := runHealthCheck(t, stubHealth{err: fmt.Errorf("dial tcp: connection refused")})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(errors.SystemServiceUnavailable), body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
