// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StorefrontHandler *handler.StorefrontHandler
	CheckoutHandler   *handler.CheckoutHandler
	ProfileHandler    *handler.ProfileHandler
	UserHandler       *handler.UserHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	storefrontHandler *handler.StorefrontHandler
	checkoutHandler   *handler.CheckoutHandler
	profileHandler    *handler.ProfileHandler
	userHandler       *handler.UserHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storefrontHandler: params.StorefrontHandler,
		checkoutHandler:   params.CheckoutHandler,
		profileHandler:    params.ProfileHandler,
		userHandler:       params.UserHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/", r.storefrontHandler.Home)
	e.GET("/catalog", r.storefrontHandler.Catalog)
	e.GET("/product/:slug", r.storefrontHandler.ProductDetail)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Checkout and order routes require a logged-in customer
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.GET("/:slug", r.checkoutHandler.InitiateCheckout)
		checkoutGroup.POST("/:slug", r.checkoutHandler.SubmitCheckout)
	}

	// The confirmation page, shown right after a successful checkout. Owner-only.
	e.GET("/payment/success/:id", r.checkoutHandler.GetOrder, r.authMiddleware.Authenticate)

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.checkoutHandler.ListOrders)
	}

	// Profile routes require a logged-in customer
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.UpdateProfile)
	}

	// Catalog management requires the staff role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleStaff))
	{
		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PATCH("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
	}
}
