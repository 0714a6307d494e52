package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gatehouse/config"
	"gatehouse/internal/delivery/http/response"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// becomes a flat {message, stack?} body; the stack only appears when the
// gateway runs in debug mode.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain errors carry their own status and client-safe message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message(), err)

		return
	}

	// Echo's own errors (bad JSON, unknown route, oversized body).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.write(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message), err)

		return
	}

	// Anything else is an unexpected failure. Log it and return a generic
	// message so internals never leak to clients.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, "Internal server error", err)
}

func (m *ErrorMiddleware) write(c echo.Context, statusCode int, message string, err error) {
	body := response.ErrorBody{Message: message}
	if m.debug {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if writeErr := c.JSON(statusCode, body); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.String("error", writeErr.Error()))
	}
}
