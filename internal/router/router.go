package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/wandermh/backend/internal/connections"
	"github.com/wandermh/backend/internal/handlers"
	"github.com/wandermh/backend/internal/middleware"
	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.SavedAttraction{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	mongoDB := mgClient.Database("wandermh")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	connectionRepo := repositories.NewMongoConnectionRepository(mongoDB)
	itineraryRepo := repositories.NewMongoItineraryRepository(mongoDB)
	attractionRepo := repositories.NewMongoAttractionRepository(mongoDB)
	hotelRepo := repositories.NewMongoHotelRepository(mongoDB)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	savedAttractionRepo := repositories.NewPostgresSavedAttractionRepository(pgdb)

	// --- Services ---
	connectionService := connections.NewService(userRepo, connectionRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile and guide browsing routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	api.GET("/users/search", userHandler.SearchUsers)
	log.Println("User routes configured.")

	// Connection routes
	connectionHandler := handlers.NewConnectionHandler(connectionService, notificationRepo)
	connectionHandler.RegisterConnectionRoutes(api)
	log.Println("Connection routes configured.")

	// Itinerary routes
	itineraryHandler := handlers.NewItineraryHandler(itineraryRepo)
	itineraryHandler.RegisterItineraryRoutes(api)
	log.Println("Itinerary routes configured.")

	// Attraction routes
	attractionHandler := handlers.NewAttractionHandler(attractionRepo)
	attractionHandler.RegisterAttractionRoutes(api)
	log.Println("Attraction routes configured.")

	// Hotel routes
	hotelHandler := handlers.NewHotelHandler(hotelRepo)
	hotelHandler.RegisterHotelRoutes(api)
	log.Println("Hotel routes configured.")

	// Saved attraction routes
	savedAttractionHandler := handlers.NewSavedAttractionHandler(savedAttractionRepo, attractionRepo)
	savedAttractionHandler.RegisterSavedAttractionRoutes(api)
	log.Println("Saved attraction routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
