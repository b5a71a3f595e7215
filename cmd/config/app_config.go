package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/handlers"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/routes"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/middleware"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/favorites"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/notify"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/recipes"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/scan"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/settings"
)

func NewApp(store kvstore.Store) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(store)
	favoritesRepository := favorites.NewFavoritesRepository(store)
	recipeRepository := recipes.NewRecipeRepository(store)
	settingsRepository := settings.NewSettingsRepository(store)

	// Collaborators
	generator := recipes.NewGeminiGenerator()
	productLookup := scan.NewProductLookup()
	captureDevice := scan.NewNopDevice()
	mailer := notify.NewSMTPMailer()

	// Service
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	favoritesService := favorites.NewFavoritesService(favoritesRepository)
	settingsService := settings.NewSettingsService(settingsRepository)
	recipeService := recipes.NewRecipeService(recipeRepository, inventoryRepository, settingsRepository, generator)
	scanService := scan.NewScanService(productLookup, inventoryService, captureDevice)
	notifyService := notify.NewNotifyService(inventoryService, mailer)

	// Handler
	foodHandler := handlers.NewFoodHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, favoritesService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	notifyHandler := handlers.NewNotifyHandler(notifyService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		FoodHandler:     foodHandler,
		RecipeHandler:   recipeHandler,
		ScanHandler:     scanHandler,
		SettingsHandler: settingsHandler,
		NotifyHandler:   notifyHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
