package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PavaniTiago/readiness-survey-api/internal/config"
	"github.com/PavaniTiago/readiness-survey-api/internal/infrastructure/database"
	"github.com/PavaniTiago/readiness-survey-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.SetupDatabase(config.Database{Driver: config.DriverSQLite, URL: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	app := fiber.New()
	middleware.SetupMiddlewares(app, "http://localhost:3000", zap.NewNop())
	SetupRoutes(app, db, zap.NewNop())
	return app
}

func TestSetupRoutes_FullStack(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/responses",
		strings.NewReader(`{"company_name":"Acme","project_name":"CRM"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/questions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderETag))
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
