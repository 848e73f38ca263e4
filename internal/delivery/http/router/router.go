// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route runs behind the verdict resolver; the guard middlewares
// below enforce anything stricter than anonymous access.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.ResolveVerdict)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.RequireAuthenticated)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.RequireAuthenticated)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.RequireAuthenticated)
	}

	// Content routes; reads accept anonymous callers, mutations are
	// admin-only.
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/posts", r.postHandler.List)
		apiGroup.POST("/posts", r.postHandler.Create, r.authMiddleware.RequireAdmin)
		apiGroup.GET("/posts/:slug", r.postHandler.Get)
		apiGroup.PUT("/posts/:slug", r.postHandler.Update, r.authMiddleware.RequireAdmin)
		apiGroup.DELETE("/posts/:slug", r.postHandler.Delete, r.authMiddleware.RequireAdmin)
		apiGroup.GET("/posts/:slug/qrcode", r.postHandler.ShareQR)
		apiGroup.GET("/categories", r.postHandler.Categories)

		apiGroup.GET("/posts/:slug/comments", r.commentHandler.ListForPost)
		apiGroup.POST("/posts/:slug/comments", r.commentHandler.Create)
		apiGroup.POST("/comments/:id/approve", r.commentHandler.Approve, r.authMiddleware.RequireAdmin)
		apiGroup.DELETE("/comments/:id", r.commentHandler.Delete, r.authMiddleware.RequireAdmin)
	}
}
