// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/delivery/http/response"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the register/login/logout handlers.
type AuthHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	users usecase.UserUsecase,
	sessions usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// credentialsBody is the request body shared by register and login.
type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var body credentialsBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid registration input")
	}

	output, err := h.users.Register(c.Request().Context(), usecase.RegisterInput{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// No cookie here. A registered client still has to log in.
	return response.User(c, http.StatusCreated, output.User)
}

// Login handles the login request. On success the session cookie is set and
// the body greets the user by name.
func (h *AuthHandler) Login(c echo.Context) error {
	var body credentialsBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login input")
	}

	input := usecase.LoginInput{
		Username: body.Username,
		Password: body.Password,
	}

	// A client that still carries a session cookie gets that session retired
	// as part of the new login.
	if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil {
		input.PriorToken = cookie.Value
	}

	output, err := h.users.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.Session.ExpiresAt))

	return response.Message(c, http.StatusOK, fmt.Sprintf("welcome back, %s", output.User.Username))
}

// Logout handles the logout request. The operation is idempotent: a missing
// or already-dead session is reported as "no session", not as an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return response.Message(c, http.StatusOK, "no session")
	}

	found, err := h.sessions.DestroySession(c.Request().Context(), cookie.Value)
	if err != nil {
		// The session row may still exist, so the cookie stays put and the
		// client is told the logout did not happen.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to destroy session on logout", slog.Any("error", err))

		return response.Message(c, http.StatusOK, "you cannot leave!")
	}

	c.SetCookie(h.expiredSessionCookie())

	if !found {
		return response.Message(c, http.StatusOK, "no session")
	}

	return response.Message(c, http.StatusOK, "logged out")
}

// sessionCookie builds the httpOnly cookie carrying the raw session token.
func (h *AuthHandler) sessionCookie(rawToken string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    rawToken,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie builds the cookie that clears the session on the client.
func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
