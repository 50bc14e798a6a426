package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant/controllers"
	"restaurant/middleware"
)

type Controllers struct {
	Auth  *controllers.AuthController
	User  *controllers.UserController
	Food  *controllers.FoodController
	Cart  *controllers.CartController
	Order *controllers.OrderController
}

// RegisterRoutes wires the REST surface the mobile clients call. Paths
// match the original app.
func RegisterRoutes(r *gin.Engine, c Controllers) {
	user := r.Group("/user")
	{
		user.POST("/register", c.Auth.Register)
		user.POST("/login", c.Auth.Login)

		authed := user.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/logout", c.Auth.Logout)
			authed.GET("/getuserid/:userId", c.User.GetUserByID)
		}
	}

	food := r.Group("/food")
	food.Use(middleware.AuthMiddleware())
	{
		food.GET("/getallfoods", c.Food.GetAllFoods)
		food.GET("/getfoodbycategory/:category", c.Food.GetFoodByCategory)

		manager := food.Group("/")
		manager.Use(middleware.ManagerMiddleware())
		{
			manager.POST("/create", c.Food.CreateFood)
		}
	}

	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.POST("/addtocart", c.Cart.AddToCart)
		cart.GET("/getAllCartItems", c.Cart.GetAllCartItems)
	}

	order := r.Group("/order")
	order.Use(middleware.AuthMiddleware())
	{
		order.POST("/placeOrder", c.Order.PlaceOrder)
		order.POST("/cancelOrder/:id", c.Order.CancelOrder)
		order.GET("/getOrderByUserId/:userId", c.Order.GetOrderByUserID)

		manager := order.Group("/")
		manager.Use(middleware.ManagerMiddleware())
		{
			manager.PUT("/updateOrder/:id", c.Order.UpdateOrderStatus)
			manager.GET("/getAllOrders", c.Order.GetAllOrders)
			manager.GET("/getPendingOrders", c.Order.GetPendingOrders)
		}
	}
}
