package restaurant

import (
	"context"
	"math"
	"sort"
)

const (
	earthRadiusKM = 6371
	maxNearby     = 10
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ByID(ctx context.Context, restaurantID int) (*Restaurant, error) {
	return s.repo.ByID(ctx, restaurantID)
}

// Nearby returns restaurants strictly within radiusKM of the query point,
// closest first, capped at 10. Rows without coordinates are skipped.
func (s *Service) Nearby(ctx context.Context, lat, lon, radiusKM float64) ([]NearbyResult, error) {
	located, err := s.repo.ListWithAddresses(ctx)
	if err != nil {
		return nil, err
	}

	results := []NearbyResult{}
	for _, l := range located {
		if l.Address.Latitude == nil || l.Address.Longitude == nil {
			continue
		}

		distance := haversine(lat, lon, *l.Address.Latitude, *l.Address.Longitude)
		if distance >= radiusKM {
			continue
		}

		results = append(results, NearbyResult{
			RestaurantID:   l.Restaurant.ID,
			RestaurantName: l.Restaurant.Name,
			Ratings:        l.Restaurant.Ratings,
			RestaurantType: l.Restaurant.Type,
			PricingLevels:  l.Restaurant.PricingLevels,
			Address:        l.Address,
			DistanceKM:     math.Round(distance*100) / 100,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})

	if len(results) > maxNearby {
		results = results[:maxNearby]
	}
	return results, nil
}

// haversine is the great-circle distance in kilometers.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
