package main

import (
	"log"
	"os"
	"path/filepath"

	"bistro/config"
	"bistro/database"
	"bistro/forecast"
	"bistro/handlers"
	"bistro/routes"
	"bistro/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	config.AppConfig.JWTSecret = jwtSecret

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	config.AppConfig.SalesFile = filepath.Join(dataDir, "sales.csv")
	config.AppConfig.RecipesFile = filepath.Join(dataDir, "recipes.json")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join("public", "uploads")
	}
	config.AppConfig.UploadDir = uploadDir

	// Empty means the predictor client falls back to its local default.
	config.AppConfig.PredictorURL = os.Getenv("PREDICTOR_URL")

	// The flat-file stores need no database; only the auth endpoints do.
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" {
		database.Connect(databaseURL)
		defer database.Close()
	} else {
		log.Println("DATABASE_URL is not set, auth endpoints disabled")
	}

	// Wire the stores and the predictor client.
	handlers.Init(
		store.NewSalesLedger(config.AppConfig.SalesFile),
		store.NewRecipeBook(config.AppConfig.RecipesFile),
		forecast.NewClient(config.AppConfig.PredictorURL),
	)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Serve uploaded menu images
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
