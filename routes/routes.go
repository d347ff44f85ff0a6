package routes

import (
	"little-lemon-api/handlers"
	"little-lemon-api/middleware"
	"little-lemon-api/policy"
	"little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Cart    *handlers.CartHandler
	Orders  *handlers.OrderHandler
	Groups  *handlers.GroupHandler
	Users   services.UserStore
}

func Setup(r *gin.Engine, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Catalog reads need no auth
		public.GET("/categories", h.Catalog.ListCategories)
		public.GET("/menu-items", h.Catalog.ListMenuItems)
		public.GET("/menu-items/:id", h.Catalog.GetMenuItem)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.Authenticate(h.Users))
	{
		auth.GET("/profile", h.Auth.Profile)

		auth.GET("/cart/menu-items", h.Cart.List)
		auth.POST("/cart/menu-items", h.Cart.AddItem)
		auth.DELETE("/cart/menu-items", h.Cart.Clear)

		auth.GET("/orders", h.Orders.List)
		auth.POST("/orders", h.Orders.Place)
		auth.GET("/orders/:id", h.Orders.Get)
		auth.PATCH("/orders/:id", h.Orders.Patch)
		auth.DELETE("/orders/:id", h.Orders.Delete)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api")
	manager.Use(middleware.Authenticate(h.Users), middleware.Require(policy.CanWriteCatalog))
	{
		manager.POST("/categories", h.Catalog.CreateCategory)
		manager.POST("/menu-items", h.Catalog.CreateMenuItem)
		manager.PUT("/menu-items/:id", h.Catalog.UpdateMenuItem)
		manager.PATCH("/menu-items/:id", h.Catalog.UpdateMenuItem)
		manager.DELETE("/menu-items/:id", h.Catalog.DeleteMenuItem)
	}

	groups := r.Group("/api/groups")
	groups.Use(middleware.Authenticate(h.Users), middleware.Require(policy.CanManageGroups))
	{
		groups.GET("/:name/users", h.Groups.List)
		groups.POST("/:name/users", h.Groups.Add)
		groups.DELETE("/:name/users/:userId", h.Groups.Remove)
	}
}
