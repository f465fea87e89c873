// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"abacus/config"
	"abacus/internal/delivery/http/middleware"
	"abacus/internal/delivery/http/router/handler"
	"abacus/internal/delivery/http/web"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config             *config.Config
	AuthHandler        *handler.AuthHandler
	CalculationHandler *handler.CalculationHandler
	PageHandler        *handler.PageHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                *config.Config
	authHandler        *handler.AuthHandler
	calculationHandler *handler.CalculationHandler
	pageHandler        *handler.PageHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                params.Config,
		authHandler:        params.AuthHandler,
		calculationHandler: params.CalculationHandler,
		pageHandler:        params.PageHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Calculation routes are scoped to the authenticated caller
	calcGroup := e.Group("/calculations")
	calcGroup.Use(r.authMiddleware.Authenticate)
	{
		calcGroup.POST("", r.calculationHandler.Create)
		calcGroup.GET("", r.calculationHandler.List)
		calcGroup.GET("/:id", r.calculationHandler.Get)
		calcGroup.PUT("/:id", r.calculationHandler.Update)
		calcGroup.DELETE("/:id", r.calculationHandler.Delete)
	}

	if r.cfg.Web.Enabled {
		r.registerPages(e)
	}
}

func (r *router) registerPages(e *echo.Echo) {
	e.GET("/", r.pageHandler.Index)
	e.GET("/login", r.pageHandler.Login)
	e.GET("/register", r.pageHandler.Register)
	e.GET("/dashboard", r.pageHandler.Dashboard)
	e.GET("/dashboard/view/:id", r.pageHandler.ViewCalculation)
	e.GET("/dashboard/edit/:id", r.pageHandler.EditCalculation)

	e.StaticFS("/static", web.StaticFS())
}
