package config

import (
	"os"
	"time"

	"foodconnect-backend/internal/api/handlers"
	"foodconnect-backend/internal/api/routes"
	"foodconnect-backend/internal/middleware"
	"foodconnect-backend/internal/utils"
	"foodconnect-backend/internal/utils/storage"
	"foodconnect-backend/pkg/ai"
	"foodconnect-backend/pkg/campus"
	"foodconnect-backend/pkg/dish"
	"foodconnect-backend/pkg/jwt"
	"foodconnect-backend/pkg/order"
	"foodconnect-backend/pkg/rating"
	"foodconnect-backend/pkg/recipe"
	"foodconnect-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	suggester := ai.NewGeminiSuggester()

	// Repository
	userRepository := user.NewUserRepository(db)
	campusRepository := campus.NewCampusRepository(db)
	dishRepository := dish.NewDishRepository(db)
	orderRepository := order.NewOrderRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	campusService := campus.NewCampusService(campusRepository)
	dishService := dish.NewDishService(dishRepository, userRepository, s3)
	orderService := order.NewOrderService(orderRepository, dishRepository)
	ratingService := rating.NewRatingService(ratingRepository, dishRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, suggester)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	aiHandler := handlers.NewAIHandler(suggester, validator)
	metaHandler := handlers.NewMetaHandler(campusService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		DishHandler:   dishHandler,
		OrderHandler:  orderHandler,
		RatingHandler: ratingHandler,
		RecipeHandler: recipeHandler,
		AIHandler:     aiHandler,
		MetaHandler:   metaHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
