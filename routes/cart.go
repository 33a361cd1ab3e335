package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/adilkhan-dev/storefront-api/controllers/cart"
	"github.com/adilkhan-dev/storefront-api/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/active-cart", cartControllers.GetActiveCart(db))  // GET /cart/active-cart
		cartGroup.POST("/add-item", cartControllers.AddItem(db))         // POST /cart/add-item
		cartGroup.POST("/checkout", cartControllers.Checkout(db))        // POST /cart/checkout
		cartGroup.PUT("/update-item", cartControllers.UpdateItem(db))    // PUT /cart/update-item
		cartGroup.DELETE("/delete-item", cartControllers.DeleteItem(db)) // DELETE /cart/delete-item
		cartGroup.DELETE("/delete-cart", cartControllers.DeleteCart(db)) // DELETE /cart/delete-cart
	}
}
