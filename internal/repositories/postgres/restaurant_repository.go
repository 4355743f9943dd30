package postgres

import (
	"context"
	"fmt"

	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/chrisdamba/dronedash/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var restaurantsSchema = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,
	`CREATE TABLE IF NOT EXISTS restaurants (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL,
    location  GEOGRAPHY(POINT, 4326) NOT NULL,
    cuisine   TEXT NOT NULL DEFAULT '',
    amenity   TEXT NOT NULL DEFAULT '',
    brand     TEXT NOT NULL DEFAULT '',
    rating    DOUBLE PRECISION NOT NULL DEFAULT 0,
    photo_url TEXT NOT NULL DEFAULT '',
    phone     TEXT NOT NULL DEFAULT '',
    address   TEXT NOT NULL DEFAULT ''
)`,
	`CREATE INDEX IF NOT EXISTS restaurants_location_idx ON restaurants USING GIST (location)`,
}

const insertRestaurant = `
    INSERT INTO restaurants (
        id, name, location, cuisine, amenity, brand, rating, photo_url, phone, address
    ) VALUES (
        $1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
        $5, $6, $7, $8, $9, $10, $11
    )
    ON CONFLICT (id) DO NOTHING
`

var _ repositories.RestaurantRepository = (*RestaurantRepository)(nil)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

// Connect opens a pool against databaseURL and checks it answers.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

func (r *RestaurantRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range restaurantsSchema {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating restaurants table: %w", err)
		}
	}
	return nil
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []models.Restaurant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, restaurant := range restaurants {
		batch.Queue(insertRestaurant,
			restaurant.ID,
			restaurant.Name,
			restaurant.Location.Lon,
			restaurant.Location.Lat,
			restaurant.Cuisine,
			restaurant.Amenity,
			restaurant.Brand,
			restaurant.Rating,
			restaurant.PhotoURL,
			restaurant.Phone,
			restaurant.Address,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting %d restaurants: %w", len(restaurants), err)
	}
	return tx.Commit(ctx)
}

// FindNearby returns up to limit restaurants within radiusMeters of center,
// nearest first.
func (r *RestaurantRepository) FindNearby(ctx context.Context, center models.Location, radiusMeters float64, limit int) ([]models.Restaurant, error) {
	query := `
        SELECT
            id, name,
            ST_AsText(location::geometry) AS point,
            cuisine, amenity, brand, rating, photo_url, phone, address
        FROM restaurants
        WHERE ST_DWithin(
            location,
            ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
            $3
        )
        ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
        LIMIT $4
    `

	rows, err := r.pool.Query(ctx, query, center.Lon, center.Lat, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var restaurant models.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Location,
			&restaurant.Cuisine,
			&restaurant.Amenity,
			&restaurant.Brand,
			&restaurant.Rating,
			&restaurant.PhotoURL,
			&restaurant.Phone,
			&restaurant.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}
	return restaurants, nil
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
