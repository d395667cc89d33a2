package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("connected to PostgreSQL")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// CUSTOMERS
	// -------------------------------
	customersSQL := `
		CREATE TABLE IF NOT EXISTS customers (
			customer_id SERIAL PRIMARY KEY,
			phone_number VARCHAR(15) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			address VARCHAR(255),
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			otp VARCHAR(6),
			email VARCHAR(255) UNIQUE
		)
	`
	if _, err := pool.Exec(ctx, customersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS + ADDRESSES
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			restaurant_id SERIAL PRIMARY KEY,
			restaurant_name VARCHAR(255) NOT NULL,
			ratings NUMERIC,
			restaurant_type VARCHAR(255),
			pricing_levels VARCHAR(50)
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	addressesSQL := `
		CREATE TABLE IF NOT EXISTS addresses (
			restaurant_id INT PRIMARY KEY REFERENCES restaurants(restaurant_id),
			state VARCHAR(255) NOT NULL,
			city VARCHAR(255) NOT NULL,
			street_address VARCHAR(255) NOT NULL,
			postal_code VARCHAR(20) NOT NULL,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)
	`
	if _, err := pool.Exec(ctx, addressesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			menu_id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(restaurant_id),
			category VARCHAR(255) NOT NULL,
			food_name VARCHAR(255) NOT NULL,
			food_description TEXT,
			food_price NUMERIC NOT NULL,
			availability BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	if _, err := pool.Exec(ctx, menuSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			order_number VARCHAR(20) PRIMARY KEY,
			due_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(50) NOT NULL,
			customer_id INT NOT NULL REFERENCES customers(customer_id),
			restaurant_id INT NOT NULL REFERENCES restaurants(restaurant_id),
			restaurant_name VARCHAR(255),
			items_count INT NOT NULL DEFAULT 0,
			subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
			taxes DOUBLE PRECISION NOT NULL DEFAULT 0,
			fooditems JSONB NOT NULL DEFAULT '[]',
			state VARCHAR(255),
			city VARCHAR(255),
			street_address VARCHAR(255),
			postal_code VARCHAR(20),
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// one open cart per (customer, restaurant)
	openCartIdxSQL := `
		CREATE UNIQUE INDEX IF NOT EXISTS orders_one_open_cart
		ON orders (customer_id, restaurant_id)
		WHERE status = 'cart'
	`
	if _, err := pool.Exec(ctx, openCartIdxSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOMER HISTORY
	// -------------------------------
	historySQL := `
		CREATE TABLE IF NOT EXISTS customer_history (
			id SERIAL PRIMARY KEY,
			customer_number VARCHAR(15) NOT NULL REFERENCES customers(phone_number),
			order_number VARCHAR(20) NOT NULL REFERENCES orders(order_number),
			UNIQUE (customer_number, order_number)
		)
	`
	if _, err := pool.Exec(ctx, historySQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANT PHOTOS
	// -------------------------------
	photosSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_photos (
			photo_id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(restaurant_id),
			food_name VARCHAR(500),
			file_name VARCHAR(500) UNIQUE NOT NULL,
			content_type VARCHAR(100) NOT NULL,
			photo_data BYTEA NOT NULL,
			upload_time TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, photosSQL); err != nil {
		return err
	}

	log.Println("schema initialized")
	return nil
}
