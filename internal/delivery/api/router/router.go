// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"holocron/internal/delivery/api/middleware"
	"holocron/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers and middleware the routes are bound to.
type RouterParams struct {
	fx.In

	CatalogHandler     *handler.CatalogHandler
	FavoriteHandler    *handler.FavoriteHandler
	AuthHandler        *handler.AuthHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler     *handler.CatalogHandler
	favoriteHandler    *handler.FavoriteHandler
	authHandler        *handler.AuthHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:     params.CatalogHandler,
		favoriteHandler:    params.FavoriteHandler,
		authHandler:        params.AuthHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes are public
	e.GET("/users", r.catalogHandler.ListUsers)
	e.GET("/people", r.catalogHandler.ListPeople)
	e.GET("/people/:id", r.catalogHandler.GetPerson)
	e.GET("/planets", r.catalogHandler.ListPlanets)
	e.GET("/planets/:id", r.catalogHandler.GetPlanet)

	// Routes acting on behalf of a user
	e.GET("/users/favorites", r.favoriteHandler.ListFavorites, r.identityMiddleware.Resolve)

	favoriteGroup := e.Group("/favorite", r.identityMiddleware.Resolve)
	{
		favoriteGroup.POST("/:kind/:id", r.favoriteHandler.AddFavorite)
		favoriteGroup.DELETE("/:kind/:id", r.favoriteHandler.RemoveFavorite)
	}
}
