package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	svc.(*userService).now = fixedClock

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeUser() *entity.User {
	return &entity.User{
		ID:             42,
		Email:          "buyer@example.com",
		HashedPassword: "hashed_password",
		Role:           entity.RoleBuyer,
		IsActive:       true,
	}
}

func refreshClaims(user *entity.User) *service.Claims {
	return &service.Claims{
		UserID:           user.ID,
		Role:             user.Role,
		TokenType:        entity.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.Email},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "new@example.com", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	txUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(mockFactory))

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, entity.RoleBuyer, user.Role)
	assert.Equal(t, "hashed_password", user.HashedPassword)
	assert.True(t, user.IsActive)
	assert.Equal(t, fixedNow, user.CreatedAt)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "taken@example.com", Password: "Password123", Role: entity.RoleSeller}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	// Inactive accounts still own their email.
	txUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(mockFactory))

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Email:    "x@example.com",
		Password: "Password123",
		Role:     entity.Role("superuser"),
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	input := &usecase.RegisterUserInput{Email: "x@example.com", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name: "valid credentials",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, "buyer@example.com").Return(activeUser(), nil)
				fx.hasher.EXPECT().Check("secret-pass", "hashed_password").Return(true)
			},
		},
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, "buyer@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, "buyer@example.com").Return(activeUser(), nil)
				fx.hasher.EXPECT().Check("secret-pass", "hashed_password").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			user, err := fx.service.Authenticate(context.Background(), "buyer@example.com", "secret-pass")

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), user.ID)
		})
	}
}

func TestUserService_Authenticate_StorageFailureIsNotUnauthorized(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, "buyer@example.com").Return(nil, errors.New("connection refused"))

	_, err := fx.service.Authenticate(context.Background(), "buyer@example.com", "secret-pass")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	user := activeUser()
	subject := entity.SubjectOf(user)

	fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret-pass", user.HashedPassword).Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(subject, fixedNow).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(subject, fixedNow).Return("refresh", nil)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ResolveRefreshToken(t *testing.T) {
	user := activeUser()

	tests := []struct {
		name    string
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name: "valid token",
			setup: func(fx userServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token", entity.TokenKindRefresh, fixedNow).Return(refreshClaims(user), nil)
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(user, nil)
			},
		},
		{
			name: "rejected by token service",
			setup: func(fx userServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token", entity.TokenKindRefresh, fixedNow).Return(nil, service.ErrInvalidToken)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "subject no longer active",
			setup: func(fx userServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token", entity.TokenKindRefresh, fixedNow).Return(refreshClaims(user), nil)
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "email reassigned to another account",
			setup: func(fx userServiceFixtures) {
				other := activeUser()
				other.ID = 99
				fx.tokenService.EXPECT().ValidateToken("token", entity.TokenKindRefresh, fixedNow).Return(refreshClaims(user), nil)
				fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(other, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			resolved, err := fx.service.ResolveRefreshToken(context.Background(), "token")

			if tt.wantErr != nil {
				assert.Nil(t, resolved)
				assert.Equal(t, tt.wantErr, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, resolved.ID)
		})
	}
}

func TestUserService_ResolveAccessToken_UsesAccessKind(t *testing.T) {
	fx := createTestUserService(t)
	fx.tokenService.EXPECT().ValidateToken("token", entity.TokenKindAccess, fixedNow).Return(nil, service.ErrInvalidToken)

	_, err := fx.service.ResolveAccessToken(context.Background(), "token")

	assert.Equal(t, domainerrors.ErrAccessTokenInvalid, err)
}

func TestUserService_RefreshTokens(t *testing.T) {
	user := activeUser()
	subject := entity.SubjectOf(user)

	t.Run("new refresh token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("old-refresh", entity.TokenKindRefresh, fixedNow).Return(refreshClaims(user), nil)
		fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(user, nil)
		fx.tokenService.EXPECT().IssueRefreshToken(subject, fixedNow).Return("new-refresh", nil)

		token, err := fx.service.RefreshRefreshToken(context.Background(), "old-refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-refresh", token)
	})

	t.Run("new access token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("old-refresh", entity.TokenKindRefresh, fixedNow).Return(refreshClaims(user), nil)
		fx.userRepo.EXPECT().FindActiveByEmail(mock.Anything, user.Email).Return(user, nil)
		fx.tokenService.EXPECT().IssueAccessToken(subject, fixedNow).Return("new-access", nil)

		token, err := fx.service.RefreshAccessToken(context.Background(), "old-refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", token)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("bad", entity.TokenKindRefresh, fixedNow).Return(nil, service.ErrInvalidToken)

		token, err := fx.service.RefreshAccessToken(context.Background(), "bad")

		assert.Empty(t, token)
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}
