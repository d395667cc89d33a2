package cart

import (
	"math"
	"time"
)

// TaxRate is applied to the subtotal of every order.
const TaxRate = 0.10

// Order lifecycle. "cart" is the only customer-mutable state; transitions
// never go back to it.
const (
	StatusCart      = "cart"
	StatusNew       = "new"
	StatusPrepare   = "prepare"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// transitions is the allowed fulfillment table. cart -> new happens only
// through Checkout.
var transitions = map[string]string{
	StatusNew:     StatusPrepare,
	StatusPrepare: StatusReady,
	StatusReady:   StatusDelivered,
}

// LineItem is one menu entry's quantity and computed subtotal.
type LineItem struct {
	MenuID    int     `json:"menu_id"`
	FoodName  string  `json:"food_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Order is the aggregate root. The restaurant name and address are
// snapshotted at cart creation, so later catalog edits never rewrite
// existing orders.
type Order struct {
	OrderNumber    string     `json:"order_number"`
	DueDate        time.Time  `json:"due_date"`
	Status         string     `json:"status"`
	CustomerID     int        `json:"customer_id"`
	RestaurantID   int        `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	ItemsCount     int        `json:"items_count"`
	Subtotal       float64    `json:"subtotal"`
	Taxes          float64    `json:"taxes"`
	Items          []LineItem `json:"fooditems"`

	State         string   `json:"state"`
	City          string   `json:"city"`
	StreetAddress string   `json:"street_address"`
	PostalCode    string   `json:"postal_code"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// recompute rebuilds the derived totals from the full item collection.
// Always a full rescan; never maintained incrementally.
func (o *Order) recompute() {
	count := 0
	subtotal := 0.0
	for _, item := range o.Items {
		count += item.Quantity
		subtotal += item.LineTotal
	}
	o.ItemsCount = count
	o.Subtotal = subtotal
	o.Taxes = round2(subtotal * TaxRate)
}

// findItem locates a line by (menu_id, food_name), or -1.
func (o *Order) findItem(menuID int, foodName string) int {
	for i, item := range o.Items {
		if item.MenuID == menuID && item.FoodName == foodName {
			return i
		}
	}
	return -1
}

// Total is what the customer pays.
func (o *Order) Total() float64 {
	return o.Subtotal + o.Taxes
}

// Clone deep-copies the order so callers can't alias stored items.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = make([]LineItem, len(o.Items))
	copy(clone.Items, o.Items)
	if o.Latitude != nil {
		lat := *o.Latitude
		clone.Latitude = &lat
	}
	if o.Longitude != nil {
		lon := *o.Longitude
		clone.Longitude = &lon
	}
	return &clone
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
