package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/handlers"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/middleware"
)

type Config struct {
	App             *fiber.App
	FoodHandler     handlers.FoodHandler
	RecipeHandler   handlers.RecipeHandler
	ScanHandler     handlers.ScanHandler
	SettingsHandler handlers.SettingsHandler
	NotifyHandler   handlers.NotifyHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.FoodItems()
	c.Recipes()
	c.Scan()
	c.Settings()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	c.App.Get("/api/v1/dashboard", c.FoodHandler.GetDashboard)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("/refresh", c.RecipeHandler.RefreshRecipes)
	recipes.Post("/ad/start", c.RecipeHandler.StartAdSession)
	recipes.Post("/ad/:id/complete", c.RecipeHandler.CompleteAdSession)

	favorites := c.App.Group("/api/v1/favorites")
	favorites.Get("", c.RecipeHandler.GetFavorites)
	favorites.Post("/toggle", c.RecipeHandler.ToggleFavorite)
}

func (c *Config) Scan() {
	scan := c.App.Group("/api/v1/scan")

	scan.Get("/capability", c.ScanHandler.GetCapability)
	scan.Post("/lookup", c.ScanHandler.LookupBarcode)
	scan.Post("/confirm", c.ScanHandler.ConfirmScan)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")

	settings.Get("/language", c.SettingsHandler.GetLanguage)
	settings.Put("/language", c.SettingsHandler.SetLanguage)
	settings.Get("/onboarding", c.SettingsHandler.GetOnboarding)
	settings.Post("/onboarding", c.SettingsHandler.CompleteOnboarding)
}

func (c *Config) Notifications() {
	c.App.Post("/api/v1/notifications/digest", c.NotifyHandler.SendDigest)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
