package auth

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

const customerColumns = `
	customer_id, phone_number, name, password,
	COALESCE(address, ''), verified, COALESCE(otp, ''), COALESCE(email, '')
`

func (r *PostgresRepository) ByPhone(ctx context.Context, phoneNumber string) (*Customer, error) {
	return r.one(ctx, `WHERE phone_number = $1`, phoneNumber)
}

func (r *PostgresRepository) ByEmail(ctx context.Context, email string) (*Customer, error) {
	return r.one(ctx, `WHERE email = $1`, email)
}

func (r *PostgresRepository) ByName(ctx context.Context, name string) (*Customer, error) {
	return r.one(ctx, `WHERE name = $1`, name)
}

func (r *PostgresRepository) one(ctx context.Context, where string, arg any) (*Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers `+where, arg)

	c := &Customer{}
	err := row.Scan(
		&c.ID, &c.PhoneNumber, &c.Name, &c.Password,
		&c.Address, &c.Verified, &c.OTP, &c.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (phone_number, name, password, address, verified, otp, email)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))
		RETURNING customer_id
	`
	return r.db.QueryRow(ctx, query,
		c.PhoneNumber, c.Name, c.Password, c.Address, c.Verified, c.OTP, c.Email,
	).Scan(&c.ID)
}

func (r *PostgresRepository) Update(ctx context.Context, c *Customer) error {
	query := `
		UPDATE customers
		SET name = $2,
		    password = $3,
		    address = NULLIF($4, ''),
		    verified = $5,
		    otp = NULLIF($6, ''),
		    email = NULLIF($7, '')
		WHERE customer_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Password, c.Address, c.Verified, c.OTP, c.Email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
