package photo

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("photo not found")

type Repository interface {
	ByFileName(ctx context.Context, fileName string) (*Photo, error)
	Create(ctx context.Context, p *Photo) error
}
