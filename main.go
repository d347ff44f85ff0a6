package main

import (
	"net/http"

	"little-lemon-api/config"
	"little-lemon-api/handlers"
	"little-lemon-api/repository"
	"little-lemon-api/routes"
	"little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db := config.InitDB(cfg)
	config.SeedSuperuser(db)

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(catalogRepo, cartRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo)
	groupSvc := services.NewGroupService(userRepo)

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Little Lemon API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍋 Welcome to the Little Lemon API",
			"health":  "/health",
			"roles":   []string{"customer", "delivery crew", "manager"},
		})
	})

	routes.Setup(r, routes.Handlers{
		Auth:    handlers.NewAuthHandler(userRepo),
		Catalog: handlers.NewCatalogHandler(catalogSvc),
		Cart:    handlers.NewCartHandler(cartSvc),
		Orders:  handlers.NewOrderHandler(orderSvc),
		Groups:  handlers.NewGroupHandler(groupSvc),
		Users:   userRepo,
	})

	logrus.Infof("server listening on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
