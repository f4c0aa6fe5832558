package food

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/entities"

	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items  map[uint]*entities.FoodItem
	nextID uint
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: map[uint]*entities.FoodItem{}, nextID: 1}
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id uint) (*entities.FoodItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, id uint) error {
	delete(f.items, id)
	return nil
}

func (f *fakeFoodRepository) GetFoodItemsByUser(_ context.Context, userID uint) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFoodRepository) GetExpiringBetween(_ context.Context, _, _ time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetExpiringBetweenForUser(_ context.Context, _ uint, _, _ time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetExpiringOn(_ context.Context, _ uint, _ time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func validRequest() domain.AddFoodItemRequest {
	return domain.AddFoodItemRequest{
		ItemName:     "Milk",
		Quantity:     2,
		PurchaseDate: "2025-03-01",
		ExpiryDate:   "2025-03-10",
		Category:     "dairy",
	}
}

func TestAddFoodItem(t *testing.T) {
	t.Parallel()
	svc := NewFoodService(newFakeFoodRepository())

	res, err := svc.AddFoodItem(context.Background(), validRequest(), 1)
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}
	if res.ID == 0 || res.ItemName != "Milk" || res.Category != "dairy" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Status == "" || res.TimeLeft == "" {
		t.Fatalf("derived fields missing: %+v", res)
	}
}

func TestAddFoodItemValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*domain.AddFoodItemRequest)
		wantErr error
	}{
		{
			name:    "bad purchase date",
			mutate:  func(r *domain.AddFoodItemRequest) { r.PurchaseDate = "01-03-2025" },
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "bad expiry date",
			mutate:  func(r *domain.AddFoodItemRequest) { r.ExpiryDate = "soon" },
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *domain.AddFoodItemRequest) { r.Quantity = 0 },
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "expiry before purchase",
			mutate: func(r *domain.AddFoodItemRequest) {
				r.PurchaseDate = "2025-03-10"
				r.ExpiryDate = "2025-03-01"
			},
			wantErr: domain.ErrExpiryBeforePurchase,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFoodService(newFakeFoodRepository())
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.AddFoodItem(context.Background(), req, 1); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteFoodItemOwnership(t *testing.T) {
	t.Parallel()
	repo := newFakeFoodRepository()
	svc := NewFoodService(repo)

	res, err := svc.AddFoodItem(context.Background(), validRequest(), 1)
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}

	if err := svc.DeleteFoodItem(context.Background(), res.ID, 2); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Fatalf("err = %v, want ErrUnauthorizedAccess", err)
	}
	if err := svc.DeleteFoodItem(context.Background(), res.ID, 1); err != nil {
		t.Fatalf("DeleteFoodItem: %v", err)
	}
	if err := svc.DeleteFoodItem(context.Background(), res.ID, 1); !errors.Is(err, domain.ErrFoodItemNotFound) {
		t.Fatalf("err = %v, want ErrFoodItemNotFound", err)
	}
}
