package menu

// Item is one entry on a restaurant's menu.
type Item struct {
	MenuID          int     `json:"menu_id"`
	RestaurantID    int     `json:"restaurant_id"`
	Category        string  `json:"category"`
	FoodName        string  `json:"food_name"`
	FoodDescription string  `json:"food_description"`
	FoodPrice       float64 `json:"food_price"`
	Availability    bool    `json:"availability"`
}
