package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/adilkhan-dev/storefront-api/controllers/order"
	"github.com/adilkhan-dev/storefront-api/middleware"
)

// SetupOrderRoutes registers the read-only "/orders/*" endpoints and the
// websocket feed for real-time order updates.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("", orderControllers.GetOrders(db))        // GET /orders
		orderGroup.GET("/ws", orderControllers.OrderFeedHandler)  // GET /orders/ws
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db)) // GET /orders/:id (id or ref)
	}
}
