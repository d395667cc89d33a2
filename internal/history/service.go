package history

import (
	"context"
	"errors"

	"quefood/internal/cart"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderDirectory reads orders for history recording and listing.
// Satisfied by cart.PostgresRepository.
type OrderDirectory interface {
	ByNumber(ctx context.Context, orderNumber string) (*cart.Order, error)
	FinalizedByNumbers(ctx context.Context, numbers []string) ([]*cart.Order, error)
}

type Service struct {
	repo   Repository
	orders OrderDirectory
}

func NewService(repo Repository, orders OrderDirectory) *Service {
	return &Service{repo: repo, orders: orders}
}

// Record links an order to the customer's history. Recording the same
// pair twice is a no-op; created reports whether a row was added.
func (s *Service) Record(ctx context.Context, customerNumber, orderNumber string) (created bool, err error) {
	if _, err := s.orders.ByNumber(ctx, orderNumber); err != nil {
		return false, ErrOrderNotFound
	}

	exists, err := s.repo.Exists(ctx, customerNumber, orderNumber)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := s.repo.Insert(ctx, customerNumber, orderNumber); err != nil {
		return false, err
	}
	return true, nil
}

// Orders returns the customer's finalized orders, newest due date first.
func (s *Service) Orders(ctx context.Context, customerNumber string) ([]*cart.Order, error) {
	numbers, err := s.repo.OrderNumbers(ctx, customerNumber)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, nil
	}
	return s.orders.FinalizedByNumbers(ctx, numbers)
}
