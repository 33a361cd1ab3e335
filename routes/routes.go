package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
// Token issuance (login/registration/password flows) lives in the external
// auth service; everything here only validates bearer tokens.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupCartRoutes(r, db)

	SetupCatalogRoutes(r, db)

	SetupOrderRoutes(r, db)

	SetupUserRoutes(r, db)
}
