package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/adilkhan-dev/storefront-api/controllers/address"
	userControllers "github.com/adilkhan-dev/storefront-api/controllers/user"
	"github.com/adilkhan-dev/storefront-api/middleware"
)

// SetupUserRoutes registers the "/users/me/*" profile and address endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/users/me")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("", userControllers.GetUser(db))    // GET /users/me
		userGroup.PUT("", userControllers.UpdateUser(db)) // PUT /users/me

		// ──────────────── Address ────────────────
		userGroup.GET("/get-address", addressControllers.GetAddress(db))          // GET /users/me/get-address
		userGroup.POST("/create-address", addressControllers.CreateAddress(db))   // POST /users/me/create-address
		userGroup.PATCH("/update-address", addressControllers.UpdateAddress(db))  // PATCH /users/me/update-address
		userGroup.DELETE("/delete-address", addressControllers.DeleteAddress(db)) // DELETE /users/me/delete-address
	}
}
