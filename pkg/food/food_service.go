package food

import (
	"context"
	"errors"
	"time"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/entities"
	"food-expiry-tracker/pkg/expiry"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID uint) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, userID uint) ([]domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id uint, userID uint) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID uint) (domain.FoodItemResponse, error) {
	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidDate
	}
	expiryDate, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidDate
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}
	if expiryDate.Before(purchaseDate) {
		return domain.FoodItemResponse{}, domain.ErrExpiryBeforePurchase
	}

	foodItem := &entities.FoodItem{
		UserID:       userID,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		Category:     req.Category,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toResponse(foodItem, time.Now()), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, userID uint) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toResponse(item, now))
	}
	return response, nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id uint, userID uint) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

// toResponse derives status and the time-left phrase at read time so they
// never go stale in storage.
func toResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:           item.ID,
		ItemName:     item.ItemName,
		Quantity:     item.Quantity,
		PurchaseDate: item.PurchaseDate,
		ExpiryDate:   item.ExpiryDate,
		Category:     item.Category,
		Status:       expiry.Evaluate(now, item.ExpiryDate).String(),
		TimeLeft:     expiry.TimeLeftPhrase(now, item.ExpiryDate),
	}
}
