package middleware

import (
	"strings"

	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/policy"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUser = "auth_user"
	bearerPrefix   = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthMiddleware resolves the bearer access token to an active user.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC}
}

// Authenticate rejects requests without a valid access token and stores the
// resolved user on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		user, err := m.userUC.ResolveAccessToken(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUser, user)

		return next(c)
	}
}

// GetUser returns the authenticated user stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetActor returns the policy actor of the authenticated user.
func GetActor(c echo.Context) (policy.Actor, bool) {
	user, ok := GetUser(c)
	if !ok {
		return policy.Actor{}, false
	}

	return policy.ActorOf(user), true
}

// SetUser stores an authenticated user on the context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
}
