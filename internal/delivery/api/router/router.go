// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SiteHandler       *handler.SiteHandler
	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	SettingsHandler   *handler.SettingsHandler
	BookHandler       *handler.BookHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	siteHandler       *handler.SiteHandler
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	settingsHandler   *handler.SettingsHandler
	bookHandler       *handler.BookHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		siteHandler:       params.SiteHandler,
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		settingsHandler:   params.SettingsHandler,
		bookHandler:       params.BookHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, outside the cookie session
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth", r.sessionMiddleware.LoadAndSave, r.sessionMiddleware.Attach)
	{
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-in/provider", r.authHandler.SignInWithProvider)
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/password-reset", r.authHandler.ResetPassword)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/state", r.authHandler.GetState)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1", r.sessionMiddleware.LoadAndSave, r.sessionMiddleware.Attach)

	// Public site routes
	apiV1.GET("/menu", r.siteHandler.GetMenu)
	apiV1.POST("/contact", r.siteHandler.SubmitContact)
	apiV1.GET("/settings", r.settingsHandler.GetSettings)

	// Routes that require a signed-in user
	userGroup := apiV1.Group("", middleware.RequireUser)
	{
		userGroup.PUT("/settings", r.settingsHandler.SaveSettings)

		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.PUT("/profile/password", r.profileHandler.UpdatePassword)
		userGroup.POST("/profile/reauthenticate", r.profileHandler.Reauthenticate)
		userGroup.DELETE("/profile", r.profileHandler.DeleteAccount)
	}

	// Book catalog routes
	booksGroup := userGroup.Group("/books")
	{
		booksGroup.GET("", r.bookHandler.FindBooks)
		booksGroup.POST("", r.bookHandler.CreateBook)
		booksGroup.DELETE("", r.bookHandler.DeleteAllBooks)
		booksGroup.GET("/:id", r.bookHandler.GetBook)
		booksGroup.PATCH("/:id", r.bookHandler.UpdateBook)
		booksGroup.DELETE("/:id", r.bookHandler.DeleteBook)
	}
}
