package models

import "time"

type CartStatus string

const (
	CartStatusActive    CartStatus = "active"    // accepting item additions
	CartStatusOrdered   CartStatus = "ordered"   // checked out, immutable
	CartStatusAbandoned CartStatus = "abandoned" // explicitly deleted by the user
)

type Cart struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// The partial unique index enforces a single active cart per user.
	UserID    uint       `gorm:"index:idx_one_active_cart_per_user,unique,where:status = 'active'" json:"user_id"`
	Status    CartStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"` // line total, snapshot at add time
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
