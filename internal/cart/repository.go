package cart

import (
	"context"
	"errors"
)

var (
	// ErrOrderNotFound: no order row with that number at all.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCartNotFound: no order in cart status matched the lookup.
	ErrCartNotFound = errors.New("cart not found or not open")
	// ErrItemNotFound: removal target is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
	// ErrInvalidQuantity: rejected before any mutation runs.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidTransition: the status change is not in the allowed table.
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Repository persists orders. Mutate runs fn inside a single
// read-modify-write unit: the Postgres implementation locks the row for
// the duration, so concurrent mutations of one order serialize instead of
// losing updates; nothing fn changes is visible unless the commit succeeds.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	ByNumber(ctx context.Context, orderNumber string) (*Order, error)
	OpenCart(ctx context.Context, orderNumber string) (*Order, error)
	OpenCartFor(ctx context.Context, customerID, restaurantID int) (*Order, error)
	OpenCartsByCustomer(ctx context.Context, customerID int) ([]*Order, error)
	// LastOrderNumber returns the highest assigned number, "" when none.
	LastOrderNumber(ctx context.Context) (string, error)
	Mutate(ctx context.Context, orderNumber string, fn func(*Order) error) (*Order, error)
	// DeleteCart removes the open cart for the pair and returns it.
	DeleteCart(ctx context.Context, customerID, restaurantID int) (*Order, error)
	// FinalizedByNumbers returns the non-cart orders among numbers,
	// newest due date first.
	FinalizedByNumbers(ctx context.Context, numbers []string) ([]*Order, error)
}
