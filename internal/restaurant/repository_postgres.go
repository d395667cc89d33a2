package restaurant

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

func (r *PostgresRepository) ByID(ctx context.Context, restaurantID int) (*Restaurant, error) {
	query := `
		SELECT restaurant_id, restaurant_name,
		       COALESCE(ratings, 0), COALESCE(restaurant_type, ''), COALESCE(pricing_levels, '')
		FROM restaurants
		WHERE restaurant_id = $1
	`

	rest := &Restaurant{}
	err := r.db.QueryRow(ctx, query, restaurantID).Scan(
		&rest.ID, &rest.Name, &rest.Ratings, &rest.Type, &rest.PricingLevels,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (r *PostgresRepository) AddressByRestaurant(ctx context.Context, restaurantID int) (*Address, error) {
	query := `
		SELECT restaurant_id, state, city, street_address, postal_code, latitude, longitude
		FROM addresses
		WHERE restaurant_id = $1
	`

	addr := &Address{}
	err := r.db.QueryRow(ctx, query, restaurantID).Scan(
		&addr.RestaurantID, &addr.State, &addr.City,
		&addr.StreetAddress, &addr.PostalCode, &addr.Latitude, &addr.Longitude,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// ListWithAddresses joins every restaurant to its address. Full scan; fine
// at catalog scale, a spatial index is the upgrade path if that changes.
func (r *PostgresRepository) ListWithAddresses(ctx context.Context) ([]Located, error) {
	query := `
		SELECT r.restaurant_id, r.restaurant_name,
		       COALESCE(r.ratings, 0), COALESCE(r.restaurant_type, ''), COALESCE(r.pricing_levels, ''),
		       a.state, a.city, a.street_address, a.postal_code, a.latitude, a.longitude
		FROM restaurants r
		JOIN addresses a ON a.restaurant_id = r.restaurant_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Located
	for rows.Next() {
		var l Located
		if err := rows.Scan(
			&l.Restaurant.ID, &l.Restaurant.Name,
			&l.Restaurant.Ratings, &l.Restaurant.Type, &l.Restaurant.PricingLevels,
			&l.Address.State, &l.Address.City, &l.Address.StreetAddress,
			&l.Address.PostalCode, &l.Address.Latitude, &l.Address.Longitude,
		); err != nil {
			return nil, err
		}
		l.Address.RestaurantID = l.Restaurant.ID
		out = append(out, l)
	}
	return out, rows.Err()
}
