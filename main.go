package main

import (
	"log"
	"time"

	"schedly-be/internal/cache"
	"schedly-be/internal/config"
	"schedly-be/internal/controllers"
	"schedly-be/internal/database"
	"schedly-be/internal/jwt"
	"schedly-be/internal/middleware"
	"schedly-be/internal/repository"
	"schedly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	scheduleService := service.NewScheduleService(scheduleRepo, activityRepo, cacheClient)
	activityService := service.NewActivityService(activityRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	scheduleController := controllers.NewScheduleController(scheduleService, cfg.FrontendURL)
	activityController := controllers.NewActivityController(activityService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with general rate limiting
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// User routes; registration and login get the stricter limiter
		users := api.Group("/users")
		{
			users.POST("", authRateLimiter.LimitMiddleware(), userController.Create)
			users.POST("/login", authRateLimiter.LimitMiddleware(), userController.Login)
			users.POST("/logout", userController.Logout)
			users.GET("/:id", userController.GetByID)
		}

		// Schedule routes - require JWT authentication
		schedules := api.Group("/schedules")
		schedules.Use(middleware.AuthMiddleware(jwtService))
		{
			schedules.POST("", scheduleController.Create)
			schedules.GET("/user/:userId", scheduleController.GetByUser)
			schedules.GET("/:scheduleId", scheduleController.GetWithActivities)
			schedules.GET("/:scheduleId/qrcode", scheduleController.GenerateQRCode)
		}

		// Activity routes
		activities := api.Group("/activities")
		{
			activities.POST("", activityController.Create)
			activities.POST("/bulk", activityController.CreateBulk)
			activities.GET("/:scheduleId/activities", activityController.GetBySchedule)
		}
	}

	// Start the server
	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
