package photo

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeStore struct {
	keys []string
	fail bool
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestUploadStoresAndMirrors(t *testing.T) {
	repo := NewInMemoryRepository()
	store := &fakeStore{}
	service := NewService(repo, store)

	p, url, err := service.Upload(context.Background(), UploadInput{
		RestaurantID: 7,
		FoodName:     "Carnitas Taco",
		FileName:     "taco.jpg",
		ContentType:  "image/jpeg",
		Data:         []byte("jpegbytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("photo was not persisted")
	}
	if url == "" {
		t.Fatal("expected a mirror URL")
	}
	if len(store.keys) != 1 || !strings.HasPrefix(store.keys[0], "restaurants/7/") {
		t.Fatalf("unexpected object key: %v", store.keys)
	}
	if !strings.HasSuffix(store.keys[0], ".jpg") {
		t.Fatalf("object key lost the extension: %s", store.keys[0])
	}

	got, err := service.ByFileName(context.Background(), "taco.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ContentType != "image/jpeg" || string(got.Data) != "jpegbytes" {
		t.Fatalf("stored photo mismatch: %+v", got)
	}
}

func TestUploadWithoutStore(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	_, url, err := service.Upload(context.Background(), UploadInput{
		RestaurantID: 7,
		FileName:     "taco.jpg",
		Data:         []byte("jpegbytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Fatalf("url = %q, want empty without object storage", url)
	}
}

func TestByFileNameUnknown(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)
	if _, err := service.ByFileName(context.Background(), "nope.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUploadDefaultsContentType(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	p, _, err := service.Upload(context.Background(), UploadInput{
		RestaurantID: 7,
		FileName:     "blob",
		Data:         []byte{0x1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ContentType != "application/octet-stream" {
		t.Fatalf("content type = %q", p.ContentType)
	}
}
