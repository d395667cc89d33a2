package cart

import (
	"context"
	"errors"
	"time"

	"quefood/internal/auth"
	"quefood/internal/menu"
	"quefood/internal/restaurant"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)

// CustomerDirectory resolves a phone number to an account. Satisfied by
// auth.PostgresRepository.
type CustomerDirectory interface {
	ByPhone(ctx context.Context, phoneNumber string) (*auth.Customer, error)
}

// RestaurantDirectory reads the catalog entry and address snapshotted at
// cart creation. Satisfied by restaurant.PostgresRepository.
type RestaurantDirectory interface {
	ByID(ctx context.Context, restaurantID int) (*restaurant.Restaurant, error)
	AddressByRestaurant(ctx context.Context, restaurantID int) (*restaurant.Address, error)
}

// MenuDirectory validates line items against the cart's restaurant.
// Satisfied by menu.PostgresRepository.
type MenuDirectory interface {
	Find(ctx context.Context, restaurantID, menuID int, foodName string) (*menu.Item, error)
}

// ItemInput is the validated mutation payload. Range constraints are
// checked before any domain logic runs.
type ItemInput struct {
	MenuID   int    `json:"menu_id" binding:"required"`
	FoodName string `json:"food_name" binding:"required"`
	Quantity int    `json:"quantity"`
}

type Service struct {
	orders      Repository
	customers   CustomerDirectory
	restaurants RestaurantDirectory
	menus       MenuDirectory
	now         func() time.Time
}

func NewService(orders Repository, customers CustomerDirectory, restaurants RestaurantDirectory, menus MenuDirectory) *Service {
	return &Service{
		orders:      orders,
		customers:   customers,
		restaurants: restaurants,
		menus:       menus,
		now:         time.Now,
	}
}

// --------------------------------------------------
// Cart creation
// --------------------------------------------------

// GetOrCreate returns the customer's open cart at the restaurant, creating
// one with a fresh order number and an address snapshot if none exists.
func (s *Service) GetOrCreate(ctx context.Context, phoneNumber string, restaurantID int) (*Order, error) {
	customer, err := s.customers.ByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	rest, err := s.restaurants.ByID(ctx, restaurantID)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}

	address, err := s.restaurants.AddressByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, ErrAddressNotFound
	}

	existing, err := s.orders.OpenCartFor(ctx, customer.ID, restaurantID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	last, err := s.orders.LastOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &Order{
		OrderNumber:    nextOrderNumber(last),
		DueDate:        s.now().UTC(),
		Status:         StatusCart,
		CustomerID:     customer.ID,
		RestaurantID:   restaurantID,
		RestaurantName: rest.Name,
		Items:          []LineItem{},
		State:          address.State,
		City:           address.City,
		StreetAddress:  address.StreetAddress,
		PostalCode:     address.PostalCode,
		Latitude:       address.Latitude,
		Longitude:      address.Longitude,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Item mutation
// --------------------------------------------------

// AddItem puts quantity units of a menu item into an open cart. An
// existing (menu_id, food_name) line is incremented by the requested
// quantity; otherwise a new line is appended at the menu's current price.
func (s *Service) AddItem(ctx context.Context, orderNumber string, in ItemInput) (*Order, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	order, err := s.orders.Mutate(ctx, orderNumber, func(o *Order) error {
		if o.Status != StatusCart {
			return ErrCartNotFound
		}

		menuItem, err := s.menus.Find(ctx, o.RestaurantID, in.MenuID, in.FoodName)
		if err != nil {
			return ErrMenuItemNotFound
		}

		if i := o.findItem(menuItem.MenuID, menuItem.FoodName); i >= 0 {
			o.Items[i].Quantity += in.Quantity
			o.Items[i].LineTotal = round2(o.Items[i].UnitPrice * float64(o.Items[i].Quantity))
		} else {
			o.Items = append(o.Items, LineItem{
				MenuID:    menuItem.MenuID,
				FoodName:  menuItem.FoodName,
				Quantity:  in.Quantity,
				UnitPrice: menuItem.FoodPrice,
				LineTotal: round2(menuItem.FoodPrice * float64(in.Quantity)),
			})
		}

		o.recompute()
		return nil
	})
	if errors.Is(err, ErrOrderNotFound) {
		return nil, ErrCartNotFound
	}
	return order, err
}

// RemoveItem takes one unit of a menu item out of an open cart; a line at
// quantity one is removed entirely.
func (s *Service) RemoveItem(ctx context.Context, orderNumber string, menuID int, foodName string) (*Order, error) {
	order, err := s.orders.Mutate(ctx, orderNumber, func(o *Order) error {
		if o.Status != StatusCart {
			return ErrCartNotFound
		}

		menuItem, err := s.menus.Find(ctx, o.RestaurantID, menuID, foodName)
		if err != nil {
			return ErrMenuItemNotFound
		}

		i := o.findItem(menuItem.MenuID, menuItem.FoodName)
		if i < 0 {
			return ErrItemNotFound
		}

		if o.Items[i].Quantity > 1 {
			o.Items[i].Quantity--
			o.Items[i].LineTotal = round2(o.Items[i].UnitPrice * float64(o.Items[i].Quantity))
		} else {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
		}

		o.recompute()
		return nil
	})
	if errors.Is(err, ErrOrderNotFound) {
		return nil, ErrCartNotFound
	}
	return order, err
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

// Checkout moves an open cart to "new". A second submission finds no open
// cart and fails rather than silently succeeding.
func (s *Service) Checkout(ctx context.Context, orderNumber string) (*Order, error) {
	order, err := s.orders.Mutate(ctx, orderNumber, func(o *Order) error {
		if o.Status != StatusCart {
			return ErrCartNotFound
		}
		o.Status = StatusNew
		return nil
	})
	if errors.Is(err, ErrOrderNotFound) {
		return nil, ErrCartNotFound
	}
	return order, err
}

// Advance moves an order one step along the fulfillment table. It never
// touches an open cart; checkout is the only way out of "cart".
func (s *Service) Advance(ctx context.Context, orderNumber, newStatus string) (*Order, error) {
	return s.orders.Mutate(ctx, orderNumber, func(o *Order) error {
		if transitions[o.Status] != newStatus {
			return ErrInvalidTransition
		}
		o.Status = newStatus
		return nil
	})
}

// --------------------------------------------------
// Reads and deletion
// --------------------------------------------------

func (s *Service) OpenCart(ctx context.Context, orderNumber string) (*Order, error) {
	return s.orders.OpenCart(ctx, orderNumber)
}

func (s *Service) CartFor(ctx context.Context, phoneNumber string, restaurantID int) (*Order, error) {
	customer, err := s.customers.ByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.orders.OpenCartFor(ctx, customer.ID, restaurantID)
}

func (s *Service) CartsFor(ctx context.Context, phoneNumber string) ([]*Order, error) {
	customer, err := s.customers.ByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	carts, err := s.orders.OpenCartsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, ErrCartNotFound
	}
	return carts, nil
}

// Delete removes the pair's order only while it is still a cart.
func (s *Service) Delete(ctx context.Context, phoneNumber string, restaurantID int) (*Order, error) {
	customer, err := s.customers.ByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.orders.DeleteCart(ctx, customer.ID, restaurantID)
}
