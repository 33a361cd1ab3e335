package cartControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	orderControllers "github.com/adilkhan-dev/storefront-api/controllers/order"
	"github.com/adilkhan-dev/storefront-api/models"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type DeleteItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

var (
	errNoActiveCart = errors.New("no active cart")
	errItemNotFound = errors.New("item not found")
)

func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(uint), true
}

// lockForUpdate row-locks the selected rows. SQLite (used in tests) serializes
// writers itself and rejects FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// isUniqueViolation reports whether err came from the unique index that
// allows one active cart per user.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// withActiveCartRetry runs fn in a transaction. When two requests race to
// create the first cart, the loser's insert hits the unique index and the
// transaction aborts; rerunning it finds the winner's cart instead of
// surfacing a 500.
func withActiveCartRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && isUniqueViolation(err) {
		err = db.Transaction(fn)
	}
	return err
}

// lockedActiveCart fetches the user's active cart under a row lock, so the
// check-then-mutate sequences below cannot race with each other.
func lockedActiveCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := lockForUpdate(tx).
		Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GET /cart/active-cart
// Returns the caller's active cart with its items; creates one lazily if none.
func GetActiveCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		err := withActiveCartRetry(db, func(tx *gorm.DB) error {
			found, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = models.Cart{UserID: userID, Status: models.CartStatusActive}
				return tx.Create(&cart).Error
			}
			if err != nil {
				return err
			}
			cart = *found
			return tx.Preload("Items.Product").First(&cart, cart.ID).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, newCartResponse(cart))
	}
}

// POST /cart/add-item
// Adds a product to the active cart, creating the cart if needed. If the
// product already has a line, the quantity is incremented and the price grows
// by quantity x product price as of this call, so the stored line price is a
// sum of historical snapshots rather than a live recomputation.
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		price := product.Price * float64(input.Quantity)

		var item models.CartItem
		created := false
		err := withActiveCartRetry(db, func(tx *gorm.DB) error {
			created = false
			cart, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = &models.Cart{UserID: userID, Status: models.CartStatusActive}
				if err := tx.Create(cart).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.CartItem{
					CartID:    cart.ID,
					ProductID: product.ID,
					Quantity:  input.Quantity,
					Price:     price,
				}
				created = true
				return tx.Create(&item).Error
			}
			if err != nil {
				return err
			}

			item.Quantity += input.Quantity
			item.Price += price
			return tx.Save(&item).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		item.Product = product
		if created {
			c.JSON(http.StatusCreated, item)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /cart/update-item
// Sets the line's quantity and recomputes its price from the live product
// price, unlike AddItem which accrues snapshots.
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNoActiveCart
			}
			if err != nil {
				return err
			}

			err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound
			}
			if err != nil {
				return err
			}

			item.Quantity = input.Quantity
			item.Price = product.Price * float64(input.Quantity)
			return tx.Save(&item).Error
		})
		switch {
		case errors.Is(err, errNoActiveCart):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
			return
		case errors.Is(err, errItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		item.Product = product
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/delete-item
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input DeleteItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNoActiveCart
			}
			if err != nil {
				return err
			}

			result := tx.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
				Delete(&models.CartItem{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errItemNotFound
			}
			return nil
		})
		switch {
		case errors.Is(err, errNoActiveCart):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
			return
		case errors.Is(err, errItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

// POST /cart/checkout
// Flips the active cart to ordered and creates the order with its lines and
// aggregate totals in the same transaction.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNoActiveCart
			}
			if err != nil {
				return err
			}

			var items []models.CartItem
			if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
				return err
			}

			cart.Status = models.CartStatusOrdered
			if err := tx.Save(cart).Error; err != nil {
				return err
			}

			var totalPrice float64
			var totalQuantity int
			lines := make([]models.OrderLine, 0, len(items))
			for _, item := range items {
				totalPrice += item.Price
				totalQuantity += item.Quantity
				lines = append(lines, models.OrderLine{
					ProductID: item.ProductID,
					Price:     item.Price,
					Quantity:  item.Quantity,
				})
			}

			order = models.Order{
				UserID:        userID,
				Ref:           orderControllers.NewOrderRef(),
				Lines:         lines,
				TotalPrice:    totalPrice,
				TotalQuantity: totalQuantity,
			}
			return tx.Create(&order).Error
		})
		switch {
		case errors.Is(err, errNoActiveCart):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout cart"})
			return
		}

		orderControllers.BroadcastOrderPlaced(order)

		c.JSON(http.StatusOK, gin.H{
			"quantity": order.TotalQuantity,
			"price":    order.TotalPrice,
		})
	}
}

// DELETE /cart/delete-cart
// Marks the active cart abandoned. Items stay with the cart row; a later
// active-cart call starts a fresh one.
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := lockedActiveCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNoActiveCart
			}
			if err != nil {
				return err
			}

			cart.Status = models.CartStatusAbandoned
			return tx.Save(cart).Error
		})
		switch {
		case errors.Is(err, errNoActiveCart):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
	}
}
