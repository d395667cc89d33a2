package photo

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu         sync.Mutex
	nextID     int
	byFileName map[string]*Photo
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byFileName: make(map[string]*Photo)}
}

func (r *InMemoryRepository) ByFileName(_ context.Context, fileName string) (*Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byFileName[fileName]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *InMemoryRepository) Create(_ context.Context, p *Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.byFileName[p.FileName] = &clone
	return nil
}
