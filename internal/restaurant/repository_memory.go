package restaurant

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu          sync.Mutex
	restaurants map[int]*Restaurant
	addresses   map[int]*Address
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[int]*Restaurant),
		addresses:   make(map[int]*Address),
	}
}

func (r *InMemoryRepository) Add(rest Restaurant, addr *Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants[rest.ID] = &rest
	if addr != nil {
		a := *addr
		a.RestaurantID = rest.ID
		r.addresses[rest.ID] = &a
	}
}

func (r *InMemoryRepository) ByID(_ context.Context, restaurantID int) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rest, ok := r.restaurants[restaurantID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *rest
	return &clone, nil
}

func (r *InMemoryRepository) AddressByRestaurant(_ context.Context, restaurantID int) (*Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr, ok := r.addresses[restaurantID]
	if !ok {
		return nil, ErrAddressNotFound
	}
	clone := *addr
	return &clone, nil
}

func (r *InMemoryRepository) ListWithAddresses(_ context.Context) ([]Located, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Located
	for id, rest := range r.restaurants {
		addr, ok := r.addresses[id]
		if !ok {
			continue
		}
		out = append(out, Located{Restaurant: *rest, Address: *addr})
	}
	return out, nil
}
