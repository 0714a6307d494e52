// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"
	"gatehouse/internal/usecase/validation"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	sessions          usecase.SessionUsecase
	minPasswordLength int
	logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	sessions usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	minPasswordLength := 0
	if cfg != nil && cfg.Auth != nil {
		minPasswordLength = cfg.Auth.MinPasswordLength
	}

	return &userService{
		txManager:         txManager,
		userRepo:          userRepo,
		hasher:            hasher,
		sessions:          sessions,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// The availability check and the insert run inside one transaction so two
// racing registrations cannot both pass the check; the unique index on
// username backs this up at the database level.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	creds := validation.Credentials{
		Username: input.Username,
		Password: input.Password,
	}

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		chain := validation.NewChain(
			validation.UsernameAvailable(userRepo),
			validation.PasswordAtLeast(srv.minPasswordLength),
		)
		if err := chain.Run(ctx, creds); err != nil {
			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login authenticates a user by username and password and mints a session.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials so
// responses never reveal which usernames exist.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	// Single lookup, no atomicity requirement. bcrypt comparison is
	// CPU-bound, so keep it out of any transaction.
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// A client re-logging-in with a live cookie gets its old session retired
	// first, so each client holds at most one session.
	if input.PriorToken != "" {
		if _, err := srv.sessions.DestroySession(ctx, input.PriorToken); err != nil {
			srv.log(ctx).Warn("Failed to retire prior session on login", slog.Any("error", err))
		}
	}

	session, rawToken, err := srv.sessions.CreateSession(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:    user,
		Session: session,
		Token:   rawToken,
	}, nil
}

// ListUsers returns every registered account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
