package food

import (
	"context"
	"time"

	"food-expiry-tracker/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error)
		DeleteFoodItem(ctx context.Context, id uint) error
		GetFoodItemsByUser(ctx context.Context, userID uint) ([]*entities.FoodItem, error)

		// Expiry window queries, read-only, consumed by the notifier.
		GetExpiringBetween(ctx context.Context, start, end time.Time) ([]*entities.FoodItem, error)
		GetExpiringBetweenForUser(ctx context.Context, userID uint, start, end time.Time) ([]*entities.FoodItem, error)
		GetExpiringOn(ctx context.Context, userID uint, day time.Time) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItemsByUser(ctx context.Context, userID uint) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

// GetExpiringBetween selects, across all users, items whose expiry date falls
// in [start, end] inclusive, ordered by owner then expiry so the caller can
// fold rows into per-user groups in one pass.
func (r *foodRepository) GetExpiringBetween(ctx context.Context, start, end time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("expiry_date >= ? AND expiry_date < ?", start, end.AddDate(0, 0, 1)).
		Order("user_id, expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetExpiringBetweenForUser(ctx context.Context, userID uint, start, end time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date < ?", userID, start, end.AddDate(0, 0, 1)).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetExpiringOn(ctx context.Context, userID uint, day time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date < ?", userID, day, day.AddDate(0, 0, 1)).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}
