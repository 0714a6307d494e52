// Package validation holds the credential checks run during registration
// and login. Checks are small named steps composed into a chain so the
// two flows can share them while keeping different failure semantics.
package validation

import (
	"context"
	"fmt"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"

	"github.com/pkg/errors"
)

// Credentials is the input every check inspects.
type Credentials struct {
	Username string
	Password string
}

// Check is one named validation step. Run returns a domain error when the
// credentials fail the step.
type Check struct {
	Name string
	Run  func(ctx context.Context, creds Credentials) error
}

// Chain runs checks in order and stops at the first failure.
type Chain struct {
	checks []Check
}

// NewChain builds a chain from the given checks.
func NewChain(checks ...Check) *Chain {
	return &Chain{checks: checks}
}

// Run executes every check against the credentials, short-circuiting on the
// first error. The returned error is the failing check's domain error.
func (c *Chain) Run(ctx context.Context, creds Credentials) error {
	for _, check := range c.checks {
		if err := check.Run(ctx, creds); err != nil {
			return errors.Wrapf(err, "credential check %q failed", check.Name)
		}
	}

	return nil
}

// UsernameAvailable fails with ErrUsernameTaken when the username is already
// registered. Any unexpected repository failure surfaces as-is.
func UsernameAvailable(userRepo repository.UserRepository) Check {
	return Check{
		Name: "username-available",
		Run: func(ctx context.Context, creds Credentials) error {
			_, err := userRepo.FindByUsername(ctx, creds.Username)
			if err == nil {
				return domainerrors.ErrUsernameTaken
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check username availability")
			}

			return nil
		},
	}
}

// PasswordAtLeast fails with ErrPasswordTooShort when the password is
// shorter than minLength bytes. Length is measured in bytes, not runes,
// so multi-byte characters count for more than one.
func PasswordAtLeast(minLength int) Check {
	return Check{
		Name: fmt.Sprintf("password-at-least-%d", minLength),
		Run: func(_ context.Context, creds Credentials) error {
			if len(creds.Password) < minLength {
				return domainerrors.ErrPasswordTooShort
			}

			return nil
		},
	}
}
