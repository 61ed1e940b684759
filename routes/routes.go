package routes

import (
	"bistro/database"
	"bistro/handlers"
	"bistro/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// --- Sales Ledger Routes ---
	sales := api.Group("/sales")
	sales.Get("/", handlers.HandleListSales)
	sales.Post("/", handlers.HandleMergeSales)
	sales.Put("/", handlers.HandleUpdateSale)
	sales.Delete("/", handlers.HandleDeleteSale)

	// --- Recipe Book Routes ---
	recipes := api.Group("/recipes")
	recipes.Get("/", handlers.HandleListRecipes)
	recipes.Post("/", handlers.HandleAddRecipe)
	recipes.Put("/", handlers.HandleUpdateRecipe)
	recipes.Delete("/", handlers.HandleDeleteRecipe)

	// --- Forecasting Routes ---
	api.Post("/predict", handlers.HandlePredict)
	api.Post("/forecast/insights", middleware.JWTMiddleware, handlers.HandleForecastInsights)

	// --- Upload Routes ---
	api.Post("/upload", handlers.HandleUpload)

	// --- Authentication Routes (require the user database) ---
	if database.GetDB() != nil {
		auth := api.Group("/auth")
		auth.Post("/register", handlers.HandleRegister)
		auth.Post("/login", handlers.HandleLogin)
	}
}
