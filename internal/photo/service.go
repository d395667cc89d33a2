package photo

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	store ObjectStore
	now   func() time.Time
}

// NewService builds a photo service; store may be nil when no object
// storage is configured, in which case photos are only kept in the DB.
func NewService(repo Repository, store ObjectStore) *Service {
	return &Service{repo: repo, store: store, now: time.Now}
}

type UploadInput struct {
	RestaurantID int
	FoodName     string
	FileName     string
	ContentType  string
	Data         []byte
}

// Upload stores the photo bytes and, when object storage is configured,
// mirrors them under a collision-free key.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Photo, string, error) {
	p := &Photo{
		RestaurantID: in.RestaurantID,
		FoodName:     in.FoodName,
		FileName:     in.FileName,
		ContentType:  in.ContentType,
		Data:         in.Data,
		UploadTime:   s.now().UTC(),
	}
	if p.ContentType == "" {
		p.ContentType = "application/octet-stream"
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, "", err
	}

	var url string
	if s.store != nil {
		key := fmt.Sprintf("restaurants/%d/%s%s", in.RestaurantID, uuid.NewString(), path.Ext(in.FileName))
		var err error
		url, err = s.store.Put(ctx, key, p.ContentType, p.Data)
		if err != nil {
			return nil, "", err
		}
	}
	return p, url, nil
}

func (s *Service) ByFileName(ctx context.Context, fileName string) (*Photo, error) {
	return s.repo.ByFileName(ctx, fileName)
}
