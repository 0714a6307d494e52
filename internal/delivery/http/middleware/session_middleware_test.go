package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	mockUsecase "gatehouse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockSessionUsecase) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "chocolatechip"},
	}

	return NewSessionMiddleware(sessions, cfg), sessions
}

func newGuardedContext(cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: "chocolatechip", Value: cookieValue})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionMiddleware_Authenticate(t *testing.T) {
	middleware, sessions := createTestSessionMiddleware(t)

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Username:  "sue",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	sessions.EXPECT().Authenticate(mock.Anything, "raw-token").Return(session, nil)

	c, _ := newGuardedContext("raw-token")

	var nextCalled bool
	handler := middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, session, c.Get(KeySession))

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	middleware, _ := createTestSessionMiddleware(t)

	c, _ := newGuardedContext("")

	handler := middleware.Authenticate(func(echo.Context) error {
		t.Fatal("next handler must not run without a session")

		return nil
	})

	err := handler(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoSession))
}

func TestSessionMiddleware_DeadSession(t *testing.T) {
	middleware, sessions := createTestSessionMiddleware(t)

	sessions.EXPECT().
		Authenticate(mock.Anything, "stale-token").
		Return(nil, domainerrors.ErrNoSession)

	c, _ := newGuardedContext("stale-token")

	handler := middleware.Authenticate(func(echo.Context) error {
		t.Fatal("next handler must not run without a session")

		return nil
	})

	err := handler(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoSession))
}
