package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"restaurant/config"
	"restaurant/controllers"
	"restaurant/database"
	"restaurant/middleware"
	"restaurant/repository"
	"restaurant/routes"
	"restaurant/services"
)

func main() {
	config.LoadEnv()

	database.ConnectMongo()
	database.InitCollections()
	database.EnsureIndexes()

	users := repository.NewMongoUserRepository(database.UserCollection)
	foods := repository.NewMongoFoodRepository(database.FoodCollection)
	carts := repository.NewMongoCartRepository(database.CartCollection)
	orders := repository.NewMongoOrderRepository(database.OrderCollection)

	cartSvc := services.NewCartService(users, foods, carts)
	orderSvc := services.NewOrderService(users, foods, carts, orders, repository.MongoTransactor{})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:  controllers.NewAuthController(users),
		User:  controllers.NewUserController(users),
		Food:  controllers.NewFoodController(foods),
		Cart:  controllers.NewCartController(cartSvc),
		Order: controllers.NewOrderController(orderSvc),
	})

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
