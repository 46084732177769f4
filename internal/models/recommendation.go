package models

import (
	"time"
)

// Recommendation links a user to a product with an optional message
// and rating. Both references are required and validated at creation.
type Recommendation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	ProductID     uint      `gorm:"index;not null" json:"product_id"`
	Message       string    `gorm:"type:text" json:"message"`
	DateGenerated time.Time `json:"date_generated"`
	Rating        *int      `json:"rating,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName specifies the table name for Recommendation model
func (Recommendation) TableName() string {
	return "recommendations"
}
