package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/chrisdamba/dronedash/internal/models"
)

// Runs against a PostGIS database named by DRONEDASH_TEST_DATABASE_URL.
func TestFindNearbyOrdersByDistance(t *testing.T) {
	url := os.Getenv("DRONEDASH_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DRONEDASH_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer pool.Close()

	repo := NewRestaurantRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}

	center := models.Location{Lat: 40.7128, Lon: -74.0060}
	seed := []models.Restaurant{
		{ID: "far", Name: "Far Pizza", Location: models.Location{Lat: 40.7228, Lon: -74.0060}},
		{ID: "near", Name: "Near Tacos", Location: models.Location{Lat: 40.7138, Lon: -74.0060}},
		{ID: "out", Name: "Out Of Range", Location: models.Location{Lat: 40.8128, Lon: -74.0060}},
	}
	if err := repo.BulkCreate(ctx, seed); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	got, err := repo.FindNearby(ctx, center, 2000, 10)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 2 || got[0].ID != "near" || got[1].ID != "far" {
		t.Fatalf("nearby got=%v want=[near far]", got)
	}
	if n, err := repo.Count(ctx); err != nil || n != 3 {
		t.Fatalf("count got=%d,%v want=3", n, err)
	}
}
