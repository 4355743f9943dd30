package repositories

import (
	"context"

	"github.com/chrisdamba/dronedash/internal/models"
)

// RestaurantRepository is where a session discovers the restaurants it
// deals orders from.
type RestaurantRepository interface {
	EnsureSchema(ctx context.Context) error
	BulkCreate(ctx context.Context, restaurants []models.Restaurant) error
	FindNearby(ctx context.Context, center models.Location, radiusMeters float64, limit int) ([]models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
