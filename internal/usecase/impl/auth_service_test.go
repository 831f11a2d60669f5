package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/usecase"
)

func TestAuthService_Register_Success(t *testing.T) {
	txManager, userRepo, hasher, tokenService, svc := newAuthFixture()
	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("$2a$12$digest", nil)
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	tokenService.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed.token", nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Email is normalized before storage and lookup.
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "signed.token", out.Token)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	// The digest never reaches the caller.
	assert.Empty(t, out.User.PasswordDigest)

	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokenService.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	txManager, userRepo, hasher, tokenService, svc := newAuthFixture()
	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("$2a$12$digest", nil)
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Bob",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))

	// No user is created and no token is issued on conflict.
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Register_RaceMapsConstraintToDuplicate(t *testing.T) {
	txManager, userRepo, hasher, _, svc := newAuthFixture()
	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("$2a$12$digest", nil)
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	// The pre-check sees no account, but the insert loses the race and the
	// repository reports the unique violation as the duplicate error.
	userRepo.On("FindByEmail", mock.Anything, "racer@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Racer",
		Email:    "racer@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	txManager, userRepo, hasher, _, svc := newAuthFixture()
	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("", errors.New("bcrypt unavailable"))

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	_, userRepo, hasher, tokenService, svc := newAuthFixture()
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByEmailWithDigest", mock.Anything, "alice@example.com").
		Return(&entity.User{
			ID:             userID,
			Name:           "Alice",
			Email:          "alice@example.com",
			PasswordDigest: "$2a$12$digest",
		}, nil)
	hasher.On("Check", "secret123", "$2a$12$digest").Return(true)
	tokenService.On("Issue", userID).Return("signed.token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "signed.token", out.Token)
	assert.Empty(t, out.User.PasswordDigest)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	_, userRepo, _, tokenService, svc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("FindByEmailWithDigest", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	_, userRepo, hasher, tokenService, svc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("FindByEmailWithDigest", mock.Anything, "alice@example.com").
		Return(&entity.User{
			ID:             uuid.New(),
			Email:          "alice@example.com",
			PasswordDigest: "$2a$12$digest",
		}, nil)
	hasher.On("Check", "wrong", "$2a$12$digest").Return(false)

	out, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	_, userRepo, hasher, _, svc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("FindByEmailWithDigest", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByEmailWithDigest", mock.Anything, "real@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "real@example.com", PasswordDigest: "$2a$12$digest"}, nil)
	hasher.On("Check", "wrong", "$2a$12$digest").Return(false)

	_, unknownErr := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "wrong"})
	_, wrongErr := svc.Login(ctx, usecase.LoginInput{Email: "real@example.com", Password: "wrong"})

	// Both failure modes surface the exact same error value.
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr, wrongErr)
}
