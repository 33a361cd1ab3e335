package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adilkhan-dev/storefront-api/models"
)

type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryDetail struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Products    []ProductSummary `json:"products"`
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		summaries := make([]CategorySummary, 0, len(categories))
		for _, category := range categories {
			summaries = append(summaries, CategorySummary{ID: category.ID, Name: category.Name})
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.Preload("Products").First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		detail := CategoryDetail{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Products:    make([]ProductSummary, 0, len(category.Products)),
		}
		for _, p := range category.Products {
			detail.Products = append(detail.Products, summarize(p))
		}
		c.JSON(http.StatusOK, detail)
	}
}
