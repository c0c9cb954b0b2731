// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.CreateAccount)
		accountGroup.POST("/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	authedGroup := e.Group("/accounts")
	authedGroup.Use(r.authMiddleware.Authenticate)
	{
		authedGroup.GET("/profile", r.accountHandler.GetProfile)
		authedGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		authedGroup.DELETE("", r.accountHandler.DeactivateAccount)
	}
}
