package auth

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	ByPhone(ctx context.Context, phoneNumber string) (*Customer, error)
	ByEmail(ctx context.Context, email string) (*Customer, error)
	ByName(ctx context.Context, name string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
}
