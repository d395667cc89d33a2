package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `
	order_number, due_date, status, customer_id, restaurant_id,
	COALESCE(restaurant_name, ''), items_count, subtotal, taxes, fooditems,
	COALESCE(state, ''), COALESCE(city, ''), COALESCE(street_address, ''),
	COALESCE(postal_code, ''), latitude, longitude
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var items []byte
	err := row.Scan(
		&o.OrderNumber, &o.DueDate, &o.Status, &o.CustomerID, &o.RestaurantID,
		&o.RestaurantName, &o.ItemsCount, &o.Subtotal, &o.Taxes, &items,
		&o.State, &o.City, &o.StreetAddress, &o.PostalCode, &o.Latitude, &o.Longitude,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if o.Items == nil {
		o.Items = []LineItem{}
	}
	return o, nil
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			order_number, due_date, status, customer_id, restaurant_id,
			restaurant_name, items_count, subtotal, taxes, fooditems,
			state, city, street_address, postal_code, latitude, longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.db.Exec(ctx, query,
		o.OrderNumber, o.DueDate, o.Status, o.CustomerID, o.RestaurantID,
		o.RestaurantName, o.ItemsCount, o.Subtotal, o.Taxes, items,
		o.State, o.City, o.StreetAddress, o.PostalCode, o.Latitude, o.Longitude,
	)
	return err
}

func (r *PostgresRepository) ByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) OpenCart(ctx context.Context, orderNumber string) (*Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1 AND status = $2`,
		orderNumber, StatusCart)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) OpenCartFor(ctx context.Context, customerID, restaurantID int) (*Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE customer_id = $1 AND restaurant_id = $2 AND status = $3`,
		customerID, restaurantID, StatusCart)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) OpenCartsByCustomer(ctx context.Context, customerID int) ([]*Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE customer_id = $1 AND status = $2
		 ORDER BY order_number`,
		customerID, StatusCart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carts []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		carts = append(carts, o)
	}
	return carts, rows.Err()
}

func (r *PostgresRepository) LastOrderNumber(ctx context.Context) (string, error) {
	var last string
	err := r.db.QueryRow(ctx,
		`SELECT order_number FROM orders ORDER BY order_number DESC LIMIT 1`).Scan(&last)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last, nil
}

// Mutate locks the order row, applies fn and writes the result in one
// transaction. Two concurrent mutations of the same order serialize on
// the row lock.
func (r *PostgresRepository) Mutate(ctx context.Context, orderNumber string, fn func(*Order) error) (*Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1 FOR UPDATE`,
		orderNumber)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := fn(o); err != nil {
		return nil, err
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders
		 SET status = $2, items_count = $3, subtotal = $4, taxes = $5, fooditems = $6
		 WHERE order_number = $1`,
		o.OrderNumber, o.Status, o.ItemsCount, o.Subtotal, o.Taxes, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) DeleteCart(ctx context.Context, customerID, restaurantID int) (*Order, error) {
	row := r.db.QueryRow(ctx,
		`DELETE FROM orders
		 WHERE customer_id = $1 AND restaurant_id = $2 AND status = $3
		 RETURNING `+orderColumns,
		customerID, restaurantID, StatusCart)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) FinalizedByNumbers(ctx context.Context, numbers []string) ([]*Order, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE order_number = ANY($1) AND status <> $2
		 ORDER BY due_date DESC`,
		numbers, StatusCart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
