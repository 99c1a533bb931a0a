// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rentauth/internal/delivery/api/middleware"
	"rentauth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AdminHandler        *handler.AdminHandler
	AdminAuthMiddleware *middleware.AdminAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	adminHandler        *handler.AdminHandler
	adminAuthMiddleware *middleware.AdminAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		adminHandler:        params.AdminHandler,
		adminAuthMiddleware: params.AdminAuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/profile", r.authHandler.Profile)
		authGroup.GET("/check-email", r.authHandler.CheckEmail)
	}

	// Listings under /auth that require an admin token
	authGroup.GET("/users/role/:role", r.adminHandler.UsersByRole, r.adminAuthMiddleware.Authenticate)
	authGroup.GET("/business-users", r.adminHandler.BusinessUsers, r.adminAuthMiddleware.Authenticate)

	adminGroup := authGroup.Group("/admin", r.adminAuthMiddleware.Authenticate)
	{
		adminGroup.GET("/stats", r.adminHandler.Statistics)
		adminGroup.GET("/role-stats", r.adminHandler.RoleStatistics)
		adminGroup.GET("/recent", r.adminHandler.RecentRegistrations)
		adminGroup.GET("/customers", r.adminHandler.Customers)
		adminGroup.GET("/users/domain", r.adminHandler.UsersByDomain)
		adminGroup.POST("/users/deactivate", r.adminHandler.Deactivate)
		adminGroup.POST("/users/reactivate", r.adminHandler.Reactivate)
		adminGroup.POST("/users/reset-attempts", r.adminHandler.ResetAttempts)
		adminGroup.POST("/tokens/cleanup", r.adminHandler.CleanupTokens)
	}
}
