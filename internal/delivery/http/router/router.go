// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

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
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Post routes; reads are public, mutations require a bearer token
	postGroup := api.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/:id", r.postHandler.Get)
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
		postGroup.PATCH("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Comment routes; the listing is public, mutations require a bearer token
	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("/post/:postId", r.commentHandler.ListByPost)
		commentGroup.POST("", r.commentHandler.Create, r.authMiddleware.Authenticate)
		commentGroup.PATCH("/:id", r.commentHandler.Update, r.authMiddleware.Authenticate)
		commentGroup.DELETE("/:id", r.commentHandler.Delete, r.authMiddleware.Authenticate)
	}
}
