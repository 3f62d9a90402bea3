package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"medical-transport-backend/internal/config"
	"medical-transport-backend/internal/database"
	"medical-transport-backend/internal/handler"
	"medical-transport-backend/internal/middleware"
	"medical-transport-backend/internal/repository"
	"medical-transport-backend/internal/service"
	"medical-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)
	defer database.Close(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	feedRepo := repository.NewFeedRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	userService := service.NewUserService(userRepo, auditRepo)
	feedService := service.NewFeedService(feedRepo, userRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// 8. Register handlers
	userHandler := handler.NewUserHandler(userService)
	feedHandler := handler.NewFeedHandler(feedService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "medical-transport-backend",
		})
	})

	// User routes
	user := r.Group("/user")
	{
		user.POST("/signup", userHandler.Signup)
		user.POST("/login", userHandler.Login)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/info", userHandler.GetInfo)
			authed.PATCH("/info", userHandler.UpdateInfo)
			authed.POST("/logout", userHandler.Logout)
		}
	}

	// Feed routes (authenticated)
	feed := r.Group("/feed")
	feed.Use(middleware.AuthMiddleware())
	{
		feed.GET("", feedHandler.List)          // List feeds for caller's hospital
		feed.PATCH("", feedHandler.UpdateState) // Overwrite a feed's approval state
		feed.POST("/post", feedHandler.Create)  // Submit a new intake record
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
