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
	mockUsecase "gatehouse/internal/mocks/usecase"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	sessions  *mockUsecase.MockSessionUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)

	service := NewUserService(
		txManager,
		userRepo,
		hasher,
		sessions,
		testConfig(),
		testLogger(),
	)

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		sessions:  sessions,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "sue",
		Password: "1234",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByUsername(ctx, "sue").
				Return(nil, repository.ErrUserNotFound)

			fx.hasher.EXPECT().Hash("1234").Return("hashed_password", nil)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "sue", output.User.Username)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "sue",
		Password: "1234",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByUsername(ctx, "sue").
				Return(&entity.User{ID: uuid.New(), Username: "sue"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "sue",
		Password: "123",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			// The availability check runs before the length check, so a free
			// username with a short password still fails on the password.
			txUserRepo.EXPECT().
				FindByUsername(ctx, "sue").
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestUserService_Register_TakenUsernameReportedBeforeShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "sue",
		Password: "12",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByUsername(ctx, "sue").
				Return(&entity.User{ID: uuid.New(), Username: "sue"}, nil)

			return fn(mockFactory)
		})

	// Both checks would fail here; the username check wins.
	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "sue",
		PasswordHash: "hashed_password",
	}
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "sue").Return(user, nil)
	fx.hasher.EXPECT().Check("1234", "hashed_password").Return(true)
	fx.sessions.EXPECT().CreateSession(ctx, user).Return(session, "raw-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "sue", Password: "1234"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "raw-token", output.Token)
	assert.Equal(t, session, output.Session)
}

func TestUserService_Login_RetiresPriorSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "sue",
		PasswordHash: "hashed_password",
	}
	session := &entity.Session{ID: uuid.New(), UserID: user.ID, Username: user.Username}

	fx.userRepo.EXPECT().FindByUsername(ctx, "sue").Return(user, nil)
	fx.hasher.EXPECT().Check("1234", "hashed_password").Return(true)
	fx.sessions.EXPECT().DestroySession(ctx, "stale-token").Return(true, nil)
	fx.sessions.EXPECT().CreateSession(ctx, user).Return(session, "fresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Username:   "sue",
		Password:   "1234",
		PriorToken: "stale-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "1234"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "sue",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "sue").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "sue", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)

	// Wrong password and unknown user surface the same error.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionStoreFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "sue",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "sue").Return(user, nil)
	fx.hasher.EXPECT().Check("1234", "hashed_password").Return(true)
	fx.sessions.EXPECT().
		CreateSession(ctx, user).
		Return(nil, "", domainerrors.ErrSessionStoreFailed)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "sue", Password: "1234"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionStoreFailed))
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Username: "sue"},
		{ID: uuid.New(), Username: "bob"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
