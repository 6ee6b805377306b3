package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/delivery/api/validator"
	"market/internal/domain/entity"
	"market/internal/infra/ratelimit"
	mockUsecase "market/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type allowLimiter struct {
	keys []string
}

func (l *allowLimiter) Allow(_ context.Context, key string) (ratelimit.Result, error) {
	l.keys = append(l.keys, key)

	return ratelimit.Result{Allowed: true, Limit: 10, Remaining: 9}, nil
}

type fixture struct {
	echo     *echo.Echo
	users    *mockUsecase.MockUserUsecase
	products *mockUsecase.MockProductUsecase
	reviews  *mockUsecase.MockReviewUsecase
	limiter  *allowLimiter
}

func newFixture(t *testing.T) *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		echo:     echo.New(),
		users:    mockUsecase.NewMockUserUsecase(t),
		products: mockUsecase.NewMockProductUsecase(t),
		reviews:  mockUsecase.NewMockReviewUsecase(t),
		limiter:  &allowLimiter{},
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.users, Logger: logger}),
		CategoryHandler:     handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t), Logger: logger}),
		ProductHandler:      handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.products, Logger: logger}),
		ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: f.reviews, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: f.users}),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(middleware.RateLimitMiddlewareParams{Limiter: f.limiter, Logger: logger}),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_PublicReads(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{}, nil)
	f.reviews.EXPECT().ListProductReviews(mock.Anything, int64(4)).Return([]*entity.Review{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/products", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/products/4/reviews", "", "").Code)
}

func TestRoutes_MutationsRequireToken(t *testing.T) {
	f := newFixture(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodPut, "/api/v1/products/1"},
		{http.MethodDelete, "/api/v1/reviews/1"},
		{http.MethodGet, "/api/v1/users/me"},
	} {
		rec := f.do(route.method, route.path, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestRoutes_AuthenticatedMutation(t *testing.T) {
	f := newFixture(t)
	seller := &entity.User{ID: 2, Email: "seller@example.com", Role: entity.RoleSeller, IsActive: true}
	f.users.EXPECT().ResolveAccessToken(mock.Anything, "good").Return(seller, nil)
	f.products.EXPECT().DeleteProduct(mock.Anything, mock.Anything, int64(9)).
		Return(&entity.Product{ID: 9, SellerID: 2}, nil)

	rec := f.do(http.MethodDelete, "/api/v1/products/9", "", "good")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CredentialEndpointsAreRateLimited(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().RefreshAccessToken(mock.Anything, "r").Return("a", nil)

	rec := f.do(http.MethodPost, "/api/v1/users/access-token", `{"refresh_token":"r"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, f.limiter.keys, 1)
	assert.True(t, strings.HasPrefix(f.limiter.keys[0], "ratelimit:refresh:"))
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
}
