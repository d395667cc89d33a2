package history

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	entries map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{entries: make(map[string][]string)}
}

func (r *InMemoryRepository) Exists(_ context.Context, customerNumber, orderNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.entries[customerNumber] {
		if n == orderNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Insert(_ context.Context, customerNumber, orderNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.entries[customerNumber] {
		if n == orderNumber {
			return nil
		}
	}
	r.entries[customerNumber] = append(r.entries[customerNumber], orderNumber)
	return nil
}

func (r *InMemoryRepository) OrderNumbers(_ context.Context, customerNumber string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries[customerNumber]))
	copy(out, r.entries[customerNumber])
	return out, nil
}
