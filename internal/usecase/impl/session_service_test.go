package impl

import (
	"context"
	"testing"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	mockRepo "gatehouse/internal/mocks/repository"
	mockSvc "gatehouse/internal/mocks/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	sessionRepo  *mockRepo.MockSessionRepository
	tokenService *mockSvc.MockSessionTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)

	service := NewSessionService(sessionRepo, tokenService, testLogger())

	return sessionServiceFixtures{
		service:      service,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
	}
}

func TestSessionService_CreateSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "sue"}

	fx.tokenService.EXPECT().Generate().Return("raw-token", nil)
	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = uuid.New()
		}).
		Return(nil)

	session, rawToken, err := fx.service.CreateSession(ctx, user)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "raw-token", rawToken)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "sue", session.Username)
	assert.Equal(t, "token-digest", session.TokenHash)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestSessionService_CreateSession_StoreFailure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "sue"}

	fx.tokenService.EXPECT().Generate().Return("raw-token", nil)
	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(errors.New("connection refused"))

	session, rawToken, err := fx.service.CreateSession(ctx, user)

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Empty(t, rawToken)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionStoreFailed))
}

func TestSessionService_Authenticate_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	stored := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Username:  "sue",
		TokenHash: "token-digest",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-digest").Return(stored, nil)

	session, err := fx.service.Authenticate(ctx, "raw-token")

	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestSessionService_Authenticate_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	session, err := fx.service.Authenticate(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrNoSession))
}

func TestSessionService_Authenticate_MissingAndExpiredLookAlike(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("gone-token").Return("gone-digest")
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "gone-digest").
		Return(nil, repository.ErrSessionNotFound)

	_, errMissing := fx.service.Authenticate(ctx, "gone-token")

	fx.tokenService.EXPECT().HashToken("stale-token").Return("stale-digest")
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "stale-digest").
		Return(nil, repository.ErrSessionExpired)

	_, errExpired := fx.service.Authenticate(ctx, "stale-token")

	// A client cannot distinguish a deleted session from an expired one.
	assert.True(t, errors.Is(errMissing, domainerrors.ErrNoSession))
	assert.True(t, errors.Is(errExpired, domainerrors.ErrNoSession))
}

func TestSessionService_DestroySession_Found(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-digest").Return(nil)

	found, err := fx.service.DestroySession(ctx, "raw-token")

	require.NoError(t, err)
	assert.True(t, found)
}

func TestSessionService_DestroySession_Idempotent(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "token-digest").
		Return(repository.ErrSessionNotFound)

	found, err := fx.service.DestroySession(ctx, "raw-token")

	// A second logout with the same cookie is a no-op, not an error.
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_DestroySession_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	found, err := fx.service.DestroySession(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_DestroySession_StoreFailure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("raw-token").Return("token-digest")
	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "token-digest").
		Return(errors.New("connection refused"))

	found, err := fx.service.DestroySession(ctx, "raw-token")

	require.Error(t, err)
	assert.False(t, found)
}

func TestSessionService_DestroySessionsForUser(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	err := fx.service.DestroySessionsForUser(ctx, userID)

	assert.NoError(t, err)
}

func TestSessionService_SweepExpired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteExpired(ctx).Return(int64(3), nil)

	removed, err := fx.service.SweepExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_SweepExpired_Failure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteExpired(ctx).Return(int64(0), errors.New("connection refused"))

	removed, err := fx.service.SweepExpired(ctx)

	require.Error(t, err)
	assert.Zero(t, removed)
}
