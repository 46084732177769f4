package models

import (
	"time"
)

// Seller application statuses. Stored as free-form strings; generic
// updates may write other values.
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// SellerApplication represents a user's request to become a seller.
// The unique index on UserID enforces at most one application per user.
type SellerApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Status    string    `gorm:"size:30;not null" json:"status"`
	Date      time.Time `json:"date"`
	UserID    *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for SellerApplication model
func (SellerApplication) TableName() string {
	return "seller_applications"
}
