package models

import "time"

type Product struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Picture     string     `json:"picture"` // public URL, uploads handled elsewhere
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null;default:0" json:"price"`
	Categories  []Category `gorm:"many2many:product_categories" json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
