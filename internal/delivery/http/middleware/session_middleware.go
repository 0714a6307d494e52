package middleware

import (
	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeySession is the echo context key the resolved session is stored under.
const KeySession = "session"

// SessionMiddleware guards routes that require a logged-in client.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate resolves the session cookie to a live session and stores it
// on the echo context. Requests without a cookie, or with a cookie whose
// session is gone or expired, all fail the same way.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrNoSession, "no session cookie")
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeySession, session)

		// Make the session visible to request-scoped logs too.
		logger := deliverycontext.GetLogger(c.Request().Context())
		if logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(),
				logger.With("username", session.Username))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
