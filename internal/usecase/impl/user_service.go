// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	role := entity.RoleOrDefault(input.Role.String())
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of buyer, seller, admin")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", role))

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Email:          input.Email,
		HashedPassword: hashedPassword,
		Role:           role,
		IsActive:       true,
		CreatedAt:      srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Authenticate verifies credentials against an active account.
func (srv *userService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	now := srv.now()
	subject := entity.SubjectOf(user)

	accessToken, err := srv.tokenService.IssueAccessToken(subject, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(subject, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ResolveRefreshToken returns the active owner of a refresh token.
func (srv *userService) ResolveRefreshToken(ctx context.Context, refreshToken string) (*entity.User, error) {
	return srv.resolveToken(ctx, refreshToken, entity.TokenKindRefresh, domainerrors.ErrRefreshTokenInvalid)
}

// ResolveAccessToken returns the active owner of an access token.
func (srv *userService) ResolveAccessToken(ctx context.Context, accessToken string) (*entity.User, error) {
	return srv.resolveToken(ctx, accessToken, entity.TokenKindAccess, domainerrors.ErrAccessTokenInvalid)
}

// resolveToken collapses every decode, kind and lookup failure into invalid.
// Only storage failures are reported as such.
func (srv *userService) resolveToken(ctx context.Context, token string, kind entity.TokenKind, invalid error) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token, kind, srv.now())
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("kind", kind), slog.Any("error", err))

		return nil, invalid
	}

	user, err := srv.userRepo.FindActiveByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, invalid
		}

		return nil, errors.Wrap(err, "failed to find token subject")
	}

	if user.ID != claims.UserID {
		return nil, invalid
	}

	return user, nil
}

// RefreshRefreshToken mints a new refresh token without revoking the presented one.
func (srv *userService) RefreshRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	user, err := srv.ResolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve refresh token")
	}

	token, err := srv.tokenService.IssueRefreshToken(entity.SubjectOf(user), srv.now())
	if err != nil {
		return "", errors.Wrap(err, "failed to issue refresh token")
	}

	return token, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token.
func (srv *userService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	user, err := srv.ResolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve refresh token")
	}

	token, err := srv.tokenService.IssueAccessToken(entity.SubjectOf(user), srv.now())
	if err != nil {
		return "", errors.Wrap(err, "failed to issue access token")
	}

	return token, nil
}
