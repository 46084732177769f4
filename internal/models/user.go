package models

import (
	"time"
)

// User roles
const (
	RoleUser   = "USER"
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

// User represents a registered marketplace user
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:50;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password   string    `gorm:"size:255" json:"-"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Firstname  string    `gorm:"size:50" json:"firstname"`
	Middlename string    `gorm:"size:50" json:"middlename"`
	Lastname   string    `gorm:"size:50" json:"lastname"`
	Role       string    `gorm:"size:20;default:'USER'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations. Deleting a user removes its products and seller
	// application with it.
	Products    []Product          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Application *SellerApplication `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"application,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
