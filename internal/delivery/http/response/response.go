// Package response holds the wire shapes the gateway returns. Bodies are
// deliberately flat: clients pattern-match on the top-level message field.
package response

import (
	"github.com/labstack/echo/v4"

	"gatehouse/internal/domain/entity"
)

// MessageBody is the body of every plain-message response.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the body the error handler emits. Stack is only populated
// in debug deployments.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// UserPayload is the public view of an account. The password hash never
// crosses this boundary.
type UserPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Message writes a plain {message} body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// User writes the public view of a single account.
func User(c echo.Context, statusCode int, user *entity.User) error {
	return c.JSON(statusCode, NewUserPayload(user))
}

// Users writes the public view of a list of accounts.
func Users(c echo.Context, statusCode int, users []*entity.User) error {
	payload := make([]UserPayload, 0, len(users))
	for _, user := range users {
		payload = append(payload, NewUserPayload(user))
	}

	return c.JSON(statusCode, payload)
}

// NewUserPayload maps a domain user to its public view.
func NewUserPayload(user *entity.User) UserPayload {
	return UserPayload{
		UserID:   user.ID.String(),
		Username: user.Username,
	}
}
