package main

import (
	"os"
	"time"

	"github.com/Gowtham121104/eventura-backend/internal/database"
	"github.com/Gowtham121104/eventura-backend/internal/handlers"
	"github.com/Gowtham121104/eventura-backend/internal/middleware"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	db, err := database.InitDB()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("Failed to get database instance")
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis backs recommendation conversation continuity only; the API
	// works without it.
	if err := services.InitRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, conversation history disabled")
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Repositories and services
	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	txManager := repository.NewTxManager(db)

	bookingStatus := services.NewBookingStatusService(txManager, bookingRepo, notificationRepo, hub, log)
	recommendations := services.NewRecommendationService(packageRepo, log)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/change-password", handlers.ChangePassword(db))

			// User routes
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
			}

			// Catalog routes
			packages := protected.Group("/packages")
			{
				packages.GET("", handlers.GetPackages(packageRepo))
				packages.GET("/:id", handlers.GetPackageByID(packageRepo))
				packages.POST("", middleware.RequireRoles("organizer", "admin"), handlers.CreatePackage(packageRepo))
				packages.PUT("/:id", middleware.RequireRoles("organizer", "admin"), handlers.UpdatePackage(packageRepo))
			}

			protected.POST("/reviews", handlers.SubmitReview(packageRepo))

			// Recommendation routes
			protected.POST("/recommendations", handlers.GetRecommendations(recommendations))
			protected.GET("/recommendations/conversations/:id", handlers.GetConversation())

			// Bookings routes
			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(bookingRepo))
				bookings.GET("/client", handlers.GetClientBookings(bookingRepo))
				bookings.GET("/pending", middleware.RequireRoles("organizer", "admin"), handlers.GetPendingBookings(bookingRepo))
				bookings.GET("/stats", middleware.RequireRoles("organizer", "admin"), handlers.GetBookingStats(bookingRepo))
				bookings.GET("/:id", handlers.GetBookingDetails(bookingRepo))
				bookings.PATCH("/:id/status", middleware.RequireRoles("organizer", "admin"), handlers.UpdateBookingStatus(bookingStatus))
			}

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", handlers.GetNotifications(notificationRepo))
				notifications.POST("/:id/read", handlers.MarkNotificationRead(notificationRepo))
				notifications.POST("/read-all", handlers.MarkAllNotificationsRead(notificationRepo))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
