package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"

	ErrFoodItemNotFound     = errors.New("food item not found")
	ErrInvalidDate          = errors.New("invalid date provided")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrExpiryBeforePurchase = errors.New("expiry date cannot be before purchase date")
	ErrUnauthorizedAccess   = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		ItemName     string `json:"item_name" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		PurchaseDate string `json:"purchase_date" validate:"required"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		Category     string `json:"category"`
	}

	FoodItemResponse struct {
		ID           uint      `json:"id"`
		ItemName     string    `json:"item_name"`
		Quantity     int       `json:"quantity"`
		PurchaseDate time.Time `json:"purchase_date"`
		ExpiryDate   time.Time `json:"expiry_date"`
		Category     string    `json:"category,omitempty"`
		Status       string    `json:"status"`
		TimeLeft     string    `json:"time_left"`
	}
)
