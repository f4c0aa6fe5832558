package entities

import (
	"time"
)

type FoodItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `json:"user_id"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `gorm:"index" json:"expiry_date"`
	Category     string    `json:"category,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
