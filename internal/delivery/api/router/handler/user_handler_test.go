package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: uc, Logger: newDiscardLogger()}), uc
}

func TestUserHandler_Register(t *testing.T) {
	created := &entity.User{
		ID:        7,
		Email:     "buyer@example.com",
		Role:      entity.RoleBuyer,
		IsActive:  true,
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockUserUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"email":"buyer@example.com","password":"hunter22!"}`,
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().Register(mock.Anything, &usecase.RegisterUserInput{
					Email:    "buyer@example.com",
					Password: "hunter22!",
				}).Return(created, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"buyer@example.com","password":"hunter22!","role":"seller"}`,
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "short password",
			body:       `{"email":"buyer@example.com","password":"short"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "unknown role",
			body:       `{"email":"buyer@example.com","password":"hunter22!","role":"owner"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newUserHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newRequest(http.MethodPost, "/api/v1/users", tt.body)
			require.NoError(t, h.Register(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}

			got := decodeData[UserResponse](t, rec)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, "buyer", got.Role)
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("form login", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "buyer@example.com", Password: "hunter22!"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh"}, nil)

		form := url.Values{"username": {"buyer@example.com"}, "password": {"hunter22!"}}
		c, rec := newFormRequest(http.MethodPost, "/api/v1/users/token", form)

		require.NoError(t, h.Login(c))

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[TokenPairResponse](t, rec)
		assert.Equal(t, TokenPairResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, got)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newRequest(http.MethodPost, "/api/v1/users/token", `{"username":"buyer@example.com","password":"nope"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("missing username", func(t *testing.T) {
		h, _ := newUserHandler(t)

		c, rec := newRequest(http.MethodPost, "/api/v1/users/token", `{"password":"nope"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_RefreshTokens(t *testing.T) {
	t.Run("refresh token", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().RefreshRefreshToken(mock.Anything, "old").Return("new-refresh", nil)

		c, rec := newRequest(http.MethodPost, "/api/v1/users/refresh-token", `{"refresh_token":"old"}`)
		require.NoError(t, h.RefreshRefreshToken(c))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new-refresh", decodeData[RefreshTokenResponse](t, rec).RefreshToken)
	})

	t.Run("access token", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().RefreshAccessToken(mock.Anything, "old").Return("new-access", nil)

		c, rec := newRequest(http.MethodPost, "/api/v1/users/access-token", `{"refresh_token":"old"}`)
		require.NoError(t, h.RefreshAccessToken(c))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new-access", decodeData[AccessTokenResponse](t, rec).AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().RefreshAccessToken(mock.Anything, "bad").Return("", domainerrors.ErrRefreshTokenInvalid)

		c, rec := newRequest(http.MethodPost, "/api/v1/users/access-token", `{"refresh_token":"bad"}`)
		require.NoError(t, h.RefreshAccessToken(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REFRESH_TOKEN_INVALID", decodeError(t, rec).Code)
	})
}

func TestUserHandler_Me(t *testing.T) {
	h, _ := newUserHandler(t)

	c, rec := newRequest(http.MethodGet, "/api/v1/users/me", "")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/v1/users/me", "")
	withUser(c, 9, entity.RoleSeller)
	require.NoError(t, h.Me(c))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[UserResponse](t, rec)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "seller", got.Role)
}
