package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatehouse/config"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_DomainErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "username taken",
			err:         domainerrors.ErrUsernameTaken,
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Username taken",
		},
		{
			name:        "password too short",
			err:         domainerrors.ErrPasswordTooShort,
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Password must be longer than 3 chars",
		},
		{
			name:        "invalid credentials",
			err:         domainerrors.ErrInvalidCredentials,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "no session",
			err:         domainerrors.ErrNoSession,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "You shall not pass!",
		},
		{
			name:        "wrapped errors keep their status",
			err:         errors.Wrap(domainerrors.ErrUsernameTaken, "credential check failed"),
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Username taken",
		},
	}

	middleware := createTestErrorMiddleware(false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext()
			middleware.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.NotContains(t, body, "stack")
		})
	}
}

func TestErrorMiddleware_EchoError(t *testing.T) {
	middleware := createTestErrorMiddleware(false)

	c, rec := newErrorContext()
	middleware.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "Invalid registration input"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid registration input", decodeErrorBody(t, rec)["message"])
}

func TestErrorMiddleware_UnexpectedErrorIsOpaque(t *testing.T) {
	middleware := createTestErrorMiddleware(false)

	c, rec := newErrorContext()
	middleware.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestErrorMiddleware_DebugStack(t *testing.T) {
	middleware := createTestErrorMiddleware(true)

	c, rec := newErrorContext()
	middleware.HandleHTTPError(errors.Wrap(domainerrors.ErrUsernameTaken, "registration failed"), c)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Username taken", body["message"])
	assert.Contains(t, body["stack"], "registration failed")
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	middleware := createTestErrorMiddleware(false)

	c, rec := newErrorContext()
	require.NoError(t, c.JSON(http.StatusOK, map[string]string{"message": "already sent"}))

	middleware.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already sent")
}
