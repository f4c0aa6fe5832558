package routes

import (
	"food-expiry-tracker/internal/api/handlers"
	"food-expiry-tracker/internal/middleware"
	"food-expiry-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications")
	notifications.Get("/user/:user_id", c.NotificationHandler.NotifyUser)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
