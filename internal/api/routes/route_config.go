package routes

import (
	"foodconnect-backend/entities"
	"foodconnect-backend/internal/api/handlers"
	"foodconnect-backend/internal/middleware"
	"foodconnect-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	DishHandler   handlers.DishHandler
	OrderHandler  handlers.OrderHandler
	RatingHandler handlers.RatingHandler
	RecipeHandler handlers.RecipeHandler
	AIHandler     handlers.AIHandler
	MetaHandler   handlers.MetaHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Dishes()
	c.Orders()
	c.Ratings()
	c.Recipes()
	c.AI()
	c.Meta()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/signup", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		auth.Get("/verify", c.UserHandler.VerifyEmail)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes")
	{
		dishes.Get("", c.DishHandler.ListDishes)
		dishes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.CreateDish)
		dishes.Get("/:id", c.DishHandler.GetDish)
		dishes.Post("/:id/photo", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.UploadDishPhoto)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Get("", c.OrderHandler.ListOrders)
		orders.Get("/:id", c.OrderHandler.GetOrder)
	}
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings")
	{
		ratings.Get("", c.RatingHandler.ListRatings)
		ratings.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RatingHandler.CreateRating)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/me", c.RecipeHandler.GetMyRecipes)
		recipes.Post("/from-pantry", c.RecipeHandler.RecipeFromPantry)
	}
}

func (c *Config) AI() {
	ai := c.App.Group("/api/v1/ai", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ai.Post("/suggest-tags", c.AIHandler.SuggestTags)
	}
}

func (c *Config) Meta() {
	meta := c.App.Group("/api/v1/meta")
	{
		meta.Get("/campuses", c.MetaHandler.GetCampuses)
		meta.Post("/campuses",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RequireRole(entities.RoleAdmin),
			c.MetaHandler.CreateCampus)
		meta.Get("/tags", c.MetaHandler.GetTags)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
