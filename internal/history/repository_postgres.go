package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, customerNumber, orderNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM customer_history
			WHERE customer_number = $1 AND order_number = $2
		)`,
		customerNumber, orderNumber).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) Insert(ctx context.Context, customerNumber, orderNumber string) error {
	// ON CONFLICT keeps the insert idempotent under concurrent submits.
	_, err := r.db.Exec(ctx,
		`INSERT INTO customer_history (customer_number, order_number)
		 VALUES ($1, $2)
		 ON CONFLICT (customer_number, order_number) DO NOTHING`,
		customerNumber, orderNumber)
	return err
}

func (r *PostgresRepository) OrderNumbers(ctx context.Context, customerNumber string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_number FROM customer_history WHERE customer_number = $1`,
		customerNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}
