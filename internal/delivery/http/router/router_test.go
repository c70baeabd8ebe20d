package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracker/config"
	appmiddleware "tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/delivery/http/validator"
	"tracker/internal/infra/auth"
	"tracker/internal/infra/persistence/sqlite"
	"tracker/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// newTestServer wires the full HTTP stack onto an in-memory database.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sqlite.Open(":memory:", logger.Discard)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Auth.AllowInsecureFallback = true
	cfg.Auth.TrustTTL = 30 * 24 * time.Hour

	deviceRepo := sqlite.NewDeviceRepository(db)
	attemptRepo := sqlite.NewAttemptRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	syllabusRepo := sqlite.NewSyllabusRepository(db)
	txManager := sqlite.NewTransactionManager(db)

	verifier, err := auth.NewPasswordVerifier(cfg, log)
	require.NoError(t, err)

	authUC := impl.NewAuthService(txManager, deviceRepo, attemptRepo, verifier, auth.NewTokenSource(), cfg, log)
	taskUC := impl.NewTaskService(taskRepo)
	syllabusUC := impl.NewSyllabusService(txManager, syllabusRepo, log)
	reportUC := impl.NewReportService(taskRepo, syllabusRepo, cfg)
	adminUC := impl.NewDeviceAdminService(txManager, deviceRepo, attemptRepo, log)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(log).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(authUC, log),
		TaskHandler:       handler.NewTaskHandler(taskUC, log),
		SyllabusHandler:   handler.NewSyllabusHandler(syllabusUC, log),
		ReportHandler:     handler.NewReportHandler(reportUC, log),
		DeviceHandler:     handler.NewDeviceHandler(adminUC, log),
		SessionMiddleware: appmiddleware.NewSessionMiddleware(authUC, log),
	}).RegisterRoutes(e)

	return e
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec, env := doJSON(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	e := newTestServer(t)

	rec, env := doJSON(t, e, http.MethodGet, "/tasks?date=2026-09-01", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
}

func TestLoginFlow(t *testing.T) {
	e := newTestServer(t)

	// First contact mints a device identifier.
	rec, env := doJSON(t, e, http.MethodPost, "/auth/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session struct {
		DeviceID      string `json:"device_id"`
		Authenticated bool   `json:"authenticated"`
		SessionToken  string `json:"session_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.DeviceID)
	assert.False(t, session.Authenticated)

	// Wrong password is a 401.
	rec, env = doJSON(t, e, http.MethodPost, "/auth/login", `{"password":"wrong"}`,
		map[string]string{appmiddleware.HeaderDeviceID: session.DeviceID})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PASSWORD", env.Error.Code)

	// The development fallback password logs in and returns a token.
	rec, env = doJSON(t, e, http.MethodPost, "/auth/login", `{"password":"jee2025"}`,
		map[string]string{appmiddleware.HeaderDeviceID: session.DeviceID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.True(t, session.Authenticated)
	require.NotEmpty(t, session.SessionToken)

	authHeaders := map[string]string{
		appmiddleware.HeaderDeviceID:     session.DeviceID,
		appmiddleware.HeaderSessionToken: session.SessionToken,
	}

	// The token now opens the protected surface.
	rec, _ = doJSON(t, e, http.MethodPost, "/tasks", `{"task_name":"Ray optics","date":"2026-09-01"}`, authHeaders)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env = doJSON(t, e, http.MethodGet, "/tasks?date=2026-09-01", "", authHeaders)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []struct {
		TaskName string `json:"task_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ray optics", tasks[0].TaskName)

	// Logout revokes the token.
	rec, _ = doJSON(t, e, http.MethodPost, "/auth/logout", "", authHeaders)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/tasks?date=2026-09-01", "", authHeaders)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTaskValidation(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodPost, "/auth/session", "", nil)
	var session struct {
		DeviceID     string `json:"device_id"`
		SessionToken string `json:"session_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))

	_, env = doJSON(t, e, http.MethodPost, "/auth/login", `{"password":"jee2025"}`,
		map[string]string{appmiddleware.HeaderDeviceID: session.DeviceID})
	require.NoError(t, json.Unmarshal(env.Data, &session))

	authHeaders := map[string]string{
		appmiddleware.HeaderDeviceID:     session.DeviceID,
		appmiddleware.HeaderSessionToken: session.SessionToken,
	}

	rec, env := doJSON(t, e, http.MethodPost, "/tasks", `{"task_name":"x","date":"not-a-date"}`, authHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
