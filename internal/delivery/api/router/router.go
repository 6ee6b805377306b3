// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Rate limit scopes for credential endpoints.
const (
	scopeLogin   = "login"
	scopeRefresh = "refresh"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CategoryHandler     *handler.CategoryHandler
	ProductHandler      *handler.ProductHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimit:       params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role and ownership rules are enforced by the use cases, so routes only
// distinguish public from authenticated access.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	auth := r.authMiddleware.Authenticate

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.POST("/token", r.userHandler.Login, r.rateLimit.Limit(scopeLogin))
		usersGroup.POST("/refresh-token", r.userHandler.RefreshRefreshToken, r.rateLimit.Limit(scopeRefresh))
		usersGroup.POST("/access-token", r.userHandler.RefreshAccessToken, r.rateLimit.Limit(scopeRefresh))
		usersGroup.GET("/me", r.userHandler.Me, auth)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.GET("/:id", r.categoryHandler.Get)
		categoriesGroup.POST("", r.categoryHandler.Create, auth)
		categoriesGroup.PUT("/:id", r.categoryHandler.Update, auth)
		categoriesGroup.DELETE("/:id", r.categoryHandler.Delete, auth)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/category/:id", r.productHandler.ListByCategory)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.GET("/:id/reviews", r.reviewHandler.ListByProduct)
		productsGroup.GET("/:id/qr", r.productHandler.QRCode)
		productsGroup.POST("", r.productHandler.Create, auth)
		productsGroup.PUT("/:id", r.productHandler.Update, auth)
		productsGroup.DELETE("/:id", r.productHandler.Delete, auth)
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.List)
		reviewsGroup.POST("", r.reviewHandler.Create, auth)
		reviewsGroup.PUT("/:id", r.reviewHandler.Update, auth)
		reviewsGroup.DELETE("/:id", r.reviewHandler.Delete, auth)
	}
}
