package cart

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository mirrors the Postgres semantics for tests: Mutate is
// serialized under one lock and nothing leaks by reference.
type InMemoryRepository struct {
	mu     sync.Mutex
	orders map[string]*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.OrderNumber] = o.Clone()
	return nil
}

func (r *InMemoryRepository) ByNumber(_ context.Context, orderNumber string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *InMemoryRepository) OpenCart(_ context.Context, orderNumber string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNumber]
	if !ok || o.Status != StatusCart {
		return nil, ErrCartNotFound
	}
	return o.Clone(), nil
}

func (r *InMemoryRepository) OpenCartFor(_ context.Context, customerID, restaurantID int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.CustomerID == customerID && o.RestaurantID == restaurantID && o.Status == StatusCart {
			return o.Clone(), nil
		}
	}
	return nil, ErrCartNotFound
}

func (r *InMemoryRepository) OpenCartsByCustomer(_ context.Context, customerID int) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var carts []*Order
	for _, o := range r.orders {
		if o.CustomerID == customerID && o.Status == StatusCart {
			carts = append(carts, o.Clone())
		}
	}
	sort.Slice(carts, func(i, j int) bool {
		return carts[i].OrderNumber < carts[j].OrderNumber
	})
	return carts, nil
}

func (r *InMemoryRepository) LastOrderNumber(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	last := ""
	for number := range r.orders {
		if number > last {
			last = number
		}
	}
	return last, nil
}

func (r *InMemoryRepository) Mutate(_ context.Context, orderNumber string, fn func(*Order) error) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	r.orders[orderNumber] = working.Clone()
	return working, nil
}

func (r *InMemoryRepository) DeleteCart(_ context.Context, customerID, restaurantID int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for number, o := range r.orders {
		if o.CustomerID == customerID && o.RestaurantID == restaurantID && o.Status == StatusCart {
			delete(r.orders, number)
			return o, nil
		}
	}
	return nil, ErrCartNotFound
}

func (r *InMemoryRepository) FinalizedByNumbers(_ context.Context, numbers []string) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		wanted[n] = true
	}

	var orders []*Order
	for number, o := range r.orders {
		if wanted[number] && o.Status != StatusCart {
			orders = append(orders, o.Clone())
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].DueDate.After(orders[j].DueDate)
	})
	return orders, nil
}
