package menu

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	// Find matches on (restaurant, menu id, food name) — the triple the
	// cart engine validates against.
	Find(ctx context.Context, restaurantID, menuID int, foodName string) (*Item, error)
	ListByRestaurant(ctx context.Context, restaurantID int) ([]Item, error)
}
