package history

import "context"

// Repository is the append-only (customer_number, order_number) join.
type Repository interface {
	Exists(ctx context.Context, customerNumber, orderNumber string) (bool, error)
	Insert(ctx context.Context, customerNumber, orderNumber string) error
	OrderNumbers(ctx context.Context, customerNumber string) ([]string, error)
}
