package cart

import (
	"context"
	"errors"
	"testing"

	"quefood/internal/auth"
	"quefood/internal/menu"
	"quefood/internal/restaurant"
)

const (
	testPhone        = "5551234567"
	testRestaurantID = 7
)

func newTestService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()

	customers := auth.NewInMemoryRepository()
	if err := customers.Create(context.Background(), &auth.Customer{
		PhoneNumber: testPhone,
		Name:        "Test Customer",
		Password:    "hashed",
		Verified:    true,
	}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	lat, lon := 40.0, -74.0
	restaurants := restaurant.NewInMemoryRepository()
	restaurants.Add(
		restaurant.Restaurant{ID: testRestaurantID, Name: "Taco Town", Ratings: 4.5},
		&restaurant.Address{
			State:         "NJ",
			City:          "Newark",
			StreetAddress: "12 Main St",
			PostalCode:    "07101",
			Latitude:      &lat,
			Longitude:     &lon,
		},
	)

	menus := menu.NewInMemoryRepository()
	menus.Add(
		menu.Item{MenuID: 1, RestaurantID: testRestaurantID, Category: "Tacos", FoodName: "Carnitas Taco", FoodPrice: 5.00, Availability: true},
		menu.Item{MenuID: 2, RestaurantID: testRestaurantID, Category: "Sides", FoodName: "Chips", FoodPrice: 2.50, Availability: true},
		menu.Item{MenuID: 3, RestaurantID: testRestaurantID, Category: "Drinks", FoodName: "Horchata", FoodPrice: 3.33, Availability: true},
	)

	orders := NewInMemoryRepository()
	return NewService(orders, customers, restaurants, menus), orders
}

func TestGetOrCreateAssignsSequentialOrderNumbers(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.OrderNumber != "A0000001" {
		t.Fatalf("first order number = %q, want A0000001", first.OrderNumber)
	}
	if first.Status != StatusCart {
		t.Fatalf("status = %q, want %q", first.Status, StatusCart)
	}
	if first.RestaurantName != "Taco Town" || first.City != "Newark" {
		t.Fatalf("snapshot not taken: %+v", first)
	}
}

func TestGetOrCreateIsIdempotentPerCustomerRestaurant(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.OrderNumber != second.OrderNumber {
		t.Fatalf("second create returned %q, want existing %q", second.OrderNumber, first.OrderNumber)
	}
}

func TestGetOrCreateUnknownCustomer(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetOrCreate(context.Background(), "0000000000", testRestaurantID)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestGetOrCreateUnknownRestaurant(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetOrCreate(context.Background(), testPhone, 999)
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}
}

func TestAddItemComputesTotals(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, err := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two $5.00 tacos: subtotal 10.00, taxes 1.00.
	order, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Subtotal != 10.00 || order.Taxes != 1.00 || order.ItemsCount != 2 {
		t.Fatalf("got subtotal=%v taxes=%v count=%d, want 10.00/1.00/2", order.Subtotal, order.Taxes, order.ItemsCount)
	}

	// One more of the same line: quantity 3, subtotal 15.00, taxes 1.50.
	order, err = service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("duplicate add created %d lines, want 1", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", order.Items[0].Quantity)
	}
	if order.Subtotal != 15.00 || order.Taxes != 1.50 || order.ItemsCount != 3 {
		t.Fatalf("got subtotal=%v taxes=%v count=%d, want 15.00/1.50/3", order.Subtotal, order.Taxes, order.ItemsCount)
	}
}

func TestAddItemRoundsTaxes(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	order, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 3, FoodName: "Horchata", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3.33 * 0.10 = 0.333, rounds to 0.33.
	if order.Taxes != 0.33 {
		t.Fatalf("taxes = %v, want 0.33", order.Taxes)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	for _, qty := range []int{0, -1} {
		if _, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: qty}); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	_, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 42, FoodName: "Unknown", Quantity: 1})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestAddItemUnknownCart(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.AddItem(context.Background(), "A9999999", ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 1})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}
}

func TestRemoveItemDecrementsThenDeletesLine(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := service.RemoveItem(ctx, cart.OrderNumber, 1, "Carnitas Taco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Items[0].Quantity != 1 || order.Subtotal != 5.00 || order.Taxes != 0.50 {
		t.Fatalf("after first remove: %+v", order)
	}

	order, err = service.RemoveItem(ctx, cart.OrderNumber, 1, "Carnitas Taco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 0 {
		t.Fatalf("line at quantity 1 should be removed, got %d lines", len(order.Items))
	}
	if order.Subtotal != 0 || order.Taxes != 0 || order.ItemsCount != 0 {
		t.Fatalf("empty cart totals not zeroed: %+v", order)
	}
}

func TestRemoveItemMissingLineLeavesCartUnchanged(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.RemoveItem(ctx, cart.OrderNumber, 2, "Chips")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}

	stored, err := repo.ByNumber(ctx, cart.OrderNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ItemsCount != 2 || stored.Subtotal != 10.00 {
		t.Fatalf("failed remove mutated cart: %+v", stored)
	}
}

func TestCheckoutMovesCartToNewExactlyOnce(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.AddItem(ctx, cart.OrderNumber, ItemInput{MenuID: 1, FoodName: "Carnitas Taco", Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := service.Checkout(ctx, cart.OrderNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != StatusNew {
		t.Fatalf("status = %q, want %q", order.Status, StatusNew)
	}

	if _, err := service.Checkout(ctx, cart.OrderNumber); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("second checkout: err = %v, want ErrCartNotFound", err)
	}
}

func TestCheckoutFreesTheSlotForANewCart(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.Checkout(ctx, first.OrderNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.OrderNumber == first.OrderNumber {
		t.Fatalf("new cart reused order number %q", first.OrderNumber)
	}
	if second.OrderNumber != "A0000002" {
		t.Fatalf("second order number = %q, want A0000002", second.OrderNumber)
	}
}

func TestAdvanceFollowsTheFulfillmentTable(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.Checkout(ctx, cart.OrderNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, status := range []string{StatusPrepare, StatusReady, StatusDelivered} {
		order, err := service.Advance(ctx, cart.OrderNumber, status)
		if err != nil {
			t.Fatalf("advance to %q: %v", status, err)
		}
		if order.Status != status {
			t.Fatalf("status = %q, want %q", order.Status, status)
		}
	}

	if _, err := service.Advance(ctx, cart.OrderNumber, StatusPrepare); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("delivered -> prepare: err = %v, want ErrInvalidTransition", err)
	}
}

func TestAdvanceRejectsSkippingStates(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.Checkout(ctx, cart.OrderNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Advance(ctx, cart.OrderNumber, StatusDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("new -> delivered: err = %v, want ErrInvalidTransition", err)
	}
}

func TestAdvanceNeverTouchesAnOpenCart(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	if _, err := service.Advance(ctx, cart.OrderNumber, StatusPrepare); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cart -> prepare: err = %v, want ErrInvalidTransition", err)
	}
}

func TestDeleteRemovesOnlyOpenCarts(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cart, _ := service.GetOrCreate(ctx, testPhone, testRestaurantID)
	deleted, err := service.Delete(ctx, testPhone, testRestaurantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.OrderNumber != cart.OrderNumber {
		t.Fatalf("deleted %q, want %q", deleted.OrderNumber, cart.OrderNumber)
	}

	if _, err := service.Delete(ctx, testPhone, testRestaurantID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("second delete: err = %v, want ErrCartNotFound", err)
	}
}

func TestCartsForReturnsNotFoundWhenEmpty(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.CartsFor(context.Background(), testPhone); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}
}
