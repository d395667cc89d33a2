package photo

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

func (r *PostgresRepository) ByFileName(ctx context.Context, fileName string) (*Photo, error) {
	var p Photo
	err := r.db.QueryRow(ctx,
		`SELECT photo_id, restaurant_id, COALESCE(food_name, ''), file_name, content_type, photo_data, upload_time
		 FROM restaurant_photos
		 WHERE file_name = $1`,
		fileName).Scan(&p.ID, &p.RestaurantID, &p.FoodName, &p.FileName, &p.ContentType, &p.Data, &p.UploadTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *Photo) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO restaurant_photos (restaurant_id, food_name, file_name, content_type, photo_data, upload_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING photo_id`,
		p.RestaurantID, p.FoodName, p.FileName, p.ContentType, p.Data, p.UploadTime).Scan(&p.ID)
}
