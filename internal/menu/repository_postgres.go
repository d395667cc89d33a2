package menu

import (
	"context"
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

func (r *PostgresRepository) Find(ctx context.Context, restaurantID, menuID int, foodName string) (*Item, error) {
	query := `
		SELECT menu_id, restaurant_id, category, food_name,
		       COALESCE(food_description, ''), food_price, availability
		FROM menu_items
		WHERE restaurant_id = $1 AND menu_id = $2 AND food_name = $3
	`

	item := &Item{}
	err := r.db.QueryRow(ctx, query, restaurantID, menuID, foodName).Scan(
		&item.MenuID, &item.RestaurantID, &item.Category, &item.FoodName,
		&item.FoodDescription, &item.FoodPrice, &item.Availability,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]Item, error) {
	query := `
		SELECT menu_id, restaurant_id, category, food_name,
		       COALESCE(food_description, ''), food_price, availability
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, food_name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.MenuID, &item.RestaurantID, &item.Category, &item.FoodName,
			&item.FoodDescription, &item.FoodPrice, &item.Availability,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
