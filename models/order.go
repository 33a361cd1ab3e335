package models

import "time"

type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Ref           string      `gorm:"uniqueIndex" json:"ref"`
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	Lines         []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	TotalPrice    float64     `json:"total_price"`
	TotalQuantity int         `json:"total_quantity"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderLine struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
