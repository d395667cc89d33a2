package auth

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*Customer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int]*Customer)}
}

func (r *InMemoryRepository) ByPhone(_ context.Context, phoneNumber string) (*Customer, error) {
	return r.find(func(c *Customer) bool { return c.PhoneNumber == phoneNumber })
}

func (r *InMemoryRepository) ByEmail(_ context.Context, email string) (*Customer, error) {
	return r.find(func(c *Customer) bool { return email != "" && c.Email == email })
}

func (r *InMemoryRepository) ByName(_ context.Context, name string) (*Customer, error) {
	return r.find(func(c *Customer) bool { return c.Name == name })
}

func (r *InMemoryRepository) find(match func(*Customer) bool) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if match(c) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *InMemoryRepository) Update(_ context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}
