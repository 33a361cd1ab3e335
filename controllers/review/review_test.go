package reviewControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	reviewControllers "github.com/adilkhan-dev/storefront-api/controllers/review"
	"github.com/adilkhan-dev/storefront-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Review{}))
	return db
}

func newReviewRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
	r.POST("/products/:id/reviews", reviewControllers.CreateReview(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndListReviews(t *testing.T) {
	db := newTestDB(t)
	r := newReviewRouter(db, 7)
	product := models.Product{Title: "kettle", Price: 25}
	require.NoError(t, db.Create(&product).Error)

	w := postJSON(t, r, fmt.Sprintf("/products/%d/reviews", product.ID),
		reviewControllers.ReviewInput{Rating: 4.5, Text: "boils fast"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(7), created.UserID)
	assert.Equal(t, 4.5, created.Rating)

	// Seed an older review to check ordering.
	older := models.Review{
		ProductID: product.ID,
		UserID:    3,
		Rating:    2,
		Text:      "lid rattles",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	list := httptest.NewRecorder()
	r.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, created.ID, reviews[0].ID)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	r := newReviewRouter(db, 1)
	product := models.Product{Title: "toaster", Price: 15}
	require.NoError(t, db.Create(&product).Error)

	w := postJSON(t, r, fmt.Sprintf("/products/%d/reviews", product.ID),
		reviewControllers.ReviewInput{Rating: 7})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	r := newReviewRouter(db, 1)

	w := postJSON(t, r, "/products/99/reviews",
		reviewControllers.ReviewInput{Rating: 3, Text: "n/a"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}
