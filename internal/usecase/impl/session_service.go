package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	tokenService service.SessionTokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tokenService service.SessionTokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession mints a session for the user. The raw token goes back to the
// caller for the cookie; only its digest is stored.
func (srv *sessionService) CreateSession(ctx context.Context, user *entity.User) (*entity.Session, string, error) {
	rawToken, err := srv.tokenService.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, "", errors.Wrap(domainerrors.ErrSessionStoreFailed, "failed to generate session token")
	}

	session := &entity.Session{
		UserID:    user.ID,
		Username:  user.Username,
		TokenHash: srv.tokenService.HashToken(rawToken),
		ExpiresAt: time.Now().Add(srv.tokenService.TTL()),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, "", errors.Wrap(domainerrors.ErrSessionStoreFailed, "failed to store session")
	}

	srv.log(ctx).Debug("Session created", slog.Any("userID", user.ID), slog.Time("expiresAt", session.ExpiresAt))

	return session, rawToken, nil
}

// Authenticate resolves a raw cookie token to its live session. Missing and
// expired sessions both come back as ErrNoSession; the caller cannot tell
// them apart and does not need to.
func (srv *sessionService) Authenticate(ctx context.Context, rawToken string) (*entity.Session, error) {
	if rawToken == "" {
		return nil, errors.Wrap(domainerrors.ErrNoSession, "no session token presented")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, errors.Wrap(domainerrors.ErrNoSession, "session not found or expired")
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	return session, nil
}

// DestroySession ends the session behind a raw token. Destroying an already
// absent session is not an error, so logout stays idempotent.
func (srv *sessionService) DestroySession(ctx context.Context, rawToken string) (bool, error) {
	if rawToken == "" {
		return false, nil
	}

	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to delete session")
	}

	return true, nil
}

// DestroySessionsForUser ends every session a user holds.
func (srv *sessionService) DestroySessionsForUser(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete sessions for user")
	}

	return nil
}

// SweepExpired reclaims expired session rows.
func (srv *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Swept expired sessions", slog.Int64("removed", removed))
	}

	return removed, nil
}
