package models

import (
	"time"
)

// Product represents a marketplace listing
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(12,2);default:0" json:"price"`
	Image       string    `gorm:"size:255" json:"image"`
	Category    string    `gorm:"size:50" json:"category"`
	Status      string    `gorm:"size:30" json:"status"`
	Date        time.Time `json:"date"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}
