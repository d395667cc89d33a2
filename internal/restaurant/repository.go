package restaurant

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("restaurant not found")
	ErrAddressNotFound = errors.New("address not found")
)

type Repository interface {
	ByID(ctx context.Context, restaurantID int) (*Restaurant, error)
	AddressByRestaurant(ctx context.Context, restaurantID int) (*Address, error)
	ListWithAddresses(ctx context.Context) ([]Located, error)
}
