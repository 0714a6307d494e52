// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
// PriorToken carries the raw session token from a cookie the client already
// holds, so a re-login can retire the old session before minting a new one.
type LoginInput struct {
	Username   string
	Password   string
	PriorToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session minted by a successful login.
// Token is the raw value destined for the cookie; it is never persisted.
type LoginOutput struct {
	User    *entity.User
	Session *entity.Session
	Token   string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
