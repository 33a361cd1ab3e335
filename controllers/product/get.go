package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adilkhan-dev/storefront-api/models"
)

// ProductSummary is the abbreviated list shape: no full description.
type ProductSummary struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	Summary string  `json:"summary"`
	Picture string  `json:"picture"`
}

func summarize(p models.Product) ProductSummary {
	return ProductSummary{
		ID:      p.ID,
		Title:   p.Title,
		Price:   p.Price,
		Summary: p.Summary,
		Picture: p.Picture,
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		summaries := make([]ProductSummary, 0, len(products))
		for _, p := range products {
			summaries = append(summaries, summarize(p))
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// GetProductByID returns the full product shape with its categories.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
