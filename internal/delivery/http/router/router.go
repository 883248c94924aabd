// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	AuthHandler       *handler.AuthHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	CheckoutHandler   *handler.CheckoutHandler
	InventoryHandler  *handler.InventoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	authHandler       *handler.AuthHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	checkoutHandler   *handler.CheckoutHandler
	inventoryHandler  *handler.InventoryHandler
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		authHandler:       params.AuthHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		checkoutHandler:   params.CheckoutHandler,
		inventoryHandler:  params.InventoryHandler,
		authMiddleware:    params.AuthMiddleware,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public browsing routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/categories", r.catalogHandler.ListCategories)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Cart routes, scoped to the shopping session
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.Resolve)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Wishlist routes, scoped to the shopping session
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.sessionMiddleware.Resolve)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("/toggle/:id", r.wishlistHandler.Toggle)
	}

	// Checkout routes, scoped to the shopping session
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.sessionMiddleware.Resolve)
	{
		checkoutGroup.POST("", r.checkoutHandler.Begin)
		checkoutGroup.GET("", r.checkoutHandler.Get)
		checkoutGroup.DELETE("", r.checkoutHandler.Abandon)
		checkoutGroup.POST("/shipping", r.checkoutHandler.SubmitShipping)
		checkoutGroup.POST("/payment", r.checkoutHandler.SubmitPayment)
		checkoutGroup.GET("/upi-qr", r.checkoutHandler.UPIQRCode)
	}

	// Inventory routes that require authentication and the manager role
	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	inventoryGroup.Use(r.authMiddleware.RequireRole(entity.RoleManager))
	{
		inventoryGroup.POST("/products", r.inventoryHandler.AddProduct)
		inventoryGroup.PUT("/products/:id", r.inventoryHandler.UpdateProduct)
		inventoryGroup.DELETE("/products/:id", r.inventoryHandler.DeleteProduct)
		inventoryGroup.PATCH("/products/:id/stock", r.inventoryHandler.StageStock)
		inventoryGroup.POST("/products/:id/stock/commit", r.inventoryHandler.CommitStock)
		inventoryGroup.GET("/stats", r.inventoryHandler.Stats)
		inventoryGroup.GET("/export", r.inventoryHandler.Export)
	}
}
