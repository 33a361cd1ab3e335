package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/adilkhan-dev/storefront-api/controllers/product"
	reviewControllers "github.com/adilkhan-dev/storefront-api/controllers/review"
	"github.com/adilkhan-dev/storefront-api/middleware"
)

// SetupCatalogRoutes registers the read-only product and category endpoints
// plus product reviews.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/products")
	productGroup.Use(middleware.ValidateToken)
	{
		productGroup.GET("", productControllers.GetProducts(db))        // GET /products
		productGroup.GET("/:id", productControllers.GetProductByID(db)) // GET /products/:id

		productGroup.GET("/:id/reviews", reviewControllers.GetProductReviews(db)) // GET /products/:id/reviews
		productGroup.POST("/:id/reviews", reviewControllers.CreateReview(db))     // POST /products/:id/reviews
	}

	categoryGroup := r.Group("/categories")
	categoryGroup.Use(middleware.ValidateToken)
	{
		categoryGroup.GET("", productControllers.GetCategories(db))        // GET /categories
		categoryGroup.GET("/:id", productControllers.GetCategoryByID(db)) // GET /categories/:id
	}
}
