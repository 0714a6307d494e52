package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatehouse/internal/domain/entity"
	mockUsecase "gatehouse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(users, slog.New(slog.NewTextHandler(io.Discard, nil)))

	sue := &entity.User{ID: uuid.New(), Username: "sue"}
	bob := &entity.User{ID: uuid.New(), Username: "bob"}
	users.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{sue, bob}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, sue.ID.String(), body[0]["user_id"])
	assert.Equal(t, "sue", body[0]["username"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_ListUsers_Error(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(users, slog.New(slog.NewTextHandler(io.Discard, nil)))

	users.EXPECT().ListUsers(mock.Anything).Return(nil, errors.New("connection refused"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Error(t, handler.ListUsers(c))
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
