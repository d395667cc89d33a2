package restaurant

type Restaurant struct {
	ID            int     `json:"restaurant_id"`
	Name          string  `json:"restaurant_name"`
	Ratings       float64 `json:"ratings"`
	Type          string  `json:"restaurant_type"`
	PricingLevels string  `json:"pricing_levels"`
}

// Address is keyed by restaurant; coordinates are optional because not
// every catalog entry is geocoded.
type Address struct {
	RestaurantID  int      `json:"-"`
	State         string   `json:"state"`
	City          string   `json:"city"`
	StreetAddress string   `json:"street_address"`
	PostalCode    string   `json:"postal_code"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Located pairs a restaurant with its address for catalog scans.
type Located struct {
	Restaurant Restaurant
	Address    Address
}

// NearbyResult is one proximity-search hit.
type NearbyResult struct {
	RestaurantID   int     `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Ratings        float64 `json:"ratings"`
	RestaurantType string  `json:"restaurant_type"`
	PricingLevels  string  `json:"pricing_levels"`
	Address        Address `json:"address"`
	DistanceKM     float64 `json:"distance_km"`
}
