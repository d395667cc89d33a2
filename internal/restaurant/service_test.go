package restaurant

import (
	"context"
	"fmt"
	"testing"
)

func seed(repo *InMemoryRepository, id int, name string, lat, lon *float64) {
	repo.Add(
		Restaurant{ID: id, Name: name, Ratings: 4.0},
		&Address{State: "NJ", City: "Newark", StreetAddress: "1 Main St", PostalCode: "07101", Latitude: lat, Longitude: lon},
	)
}

func ptr(v float64) *float64 { return &v }

func TestNearbyFiltersByRadiusAndSortsClosestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	// Roughly 2 km and 8 km north of the query point.
	seed(repo, 1, "Far", ptr(40.072), ptr(-74.0))
	seed(repo, 2, "Near", ptr(40.018), ptr(-74.0))
	seed(repo, 3, "Here", ptr(40.001), ptr(-74.0))

	service := NewService(repo)
	results, err := service.Nearby(context.Background(), 40.0, -74.0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].RestaurantName != "Here" || results[1].RestaurantName != "Near" {
		t.Fatalf("wrong order: %q then %q", results[0].RestaurantName, results[1].RestaurantName)
	}
	if results[0].DistanceKM >= results[1].DistanceKM {
		t.Fatalf("distances not ascending: %v, %v", results[0].DistanceKM, results[1].DistanceKM)
	}
}

func TestNearbyRadiusBoundaryIsExclusive(t *testing.T) {
	repo := NewInMemoryRepository()
	seed(repo, 1, "Colocated", ptr(40.0), ptr(-74.0))

	service := NewService(repo)
	results, err := service.Nearby(context.Background(), 40.0, -74.0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("distance == radius must be excluded, got %d results", len(results))
	}
}

func TestNearbySkipsRestaurantsWithoutCoordinates(t *testing.T) {
	repo := NewInMemoryRepository()
	seed(repo, 1, "NoCoords", nil, nil)
	seed(repo, 2, "HalfCoords", ptr(40.0), nil)
	seed(repo, 3, "WithCoords", ptr(40.001), ptr(-74.0))

	service := NewService(repo)
	results, err := service.Nearby(context.Background(), 40.0, -74.0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].RestaurantName != "WithCoords" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestNearbyCapsAtTenResults(t *testing.T) {
	repo := NewInMemoryRepository()
	for i := 1; i <= 15; i++ {
		seed(repo, i, fmt.Sprintf("R%d", i), ptr(40.0+float64(i)*0.001), ptr(-74.0))
	}

	service := NewService(repo)
	results, err := service.Nearby(context.Background(), 40.0, -74.0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("got %d results, want cap of 10", len(results))
	}
	// The five farthest must be the ones dropped.
	for _, r := range results {
		if r.RestaurantName == "R11" || r.RestaurantName == "R15" {
			t.Fatalf("farthest restaurant %q survived the cap", r.RestaurantName)
		}
	}
}

func TestNearbyEmptyCatalogReturnsEmptySlice(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	results, err := service.Nearby(context.Background(), 40.0, -74.0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", results)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// New York City to Philadelphia, roughly 130 km.
	d := haversine(40.7128, -74.0060, 39.9526, -75.1652)
	if d < 120 || d > 140 {
		t.Fatalf("NYC-PHL distance = %v km, want ~130", d)
	}
}
