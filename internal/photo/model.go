package photo

import "time"

// Photo is a food image stored alongside its bytes so it can be served
// directly, plus an optional mirror in object storage.
type Photo struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	FoodName     string    `json:"food_name"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	Data         []byte    `json:"-"`
	UploadTime   time.Time `json:"upload_time"`
}
