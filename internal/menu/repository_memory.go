package menu

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Add(items ...Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
}

func (r *InMemoryRepository) Find(_ context.Context, restaurantID, menuID int, foodName string) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.RestaurantID == restaurantID && item.MenuID == menuID && item.FoodName == foodName {
			clone := item
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) ListByRestaurant(_ context.Context, restaurantID int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Item
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].FoodName < out[j].FoodName
	})
	return out, nil
}
