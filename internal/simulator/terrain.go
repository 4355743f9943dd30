package simulator

import (
	"math"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
)

// TerrainProvider answers ground height queries in metres.
type TerrainProvider interface {
	GroundHeight(lon, lat float64) float64
}

type TerrainFunc func(lon, lat float64) float64

func (f TerrainFunc) GroundHeight(lon, lat float64) float64 { return f(lon, lat) }

type FlatTerrain struct {
	Height float64
}

func (t FlatTerrain) GroundHeight(lon, lat float64) float64 { return t.Height }

// RollingTerrain is a deterministic field of sine hills around Origin.
type RollingTerrain struct {
	Origin     models.Location
	Base       float64
	Amplitude  float64
	Wavelength float64
}

func (t RollingTerrain) GroundHeight(lon, lat float64) float64 {
	x, z := geo.ToLocalMeters(t.Origin, models.Location{Lat: lat, Lon: lon})
	k := 2 * math.Pi / t.Wavelength
	return t.Base + t.Amplitude*math.Sin(k*x)*math.Cos(k*z)
}

// groundAt treats a missing provider or a NaN answer as sea level.
func groundAt(terrain TerrainProvider, lon, lat float64) float64 {
	if terrain == nil {
		return 0
	}
	h := terrain.GroundHeight(lon, lat)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

func newTerrain(cfg *models.Config) TerrainProvider {
	if cfg.Terrain == "rolling" {
		return RollingTerrain{
			Origin:     models.Location{Lat: cfg.SpawnLat, Lon: cfg.SpawnLon},
			Base:       10,
			Amplitude:  15,
			Wavelength: 800,
		}
	}
	return FlatTerrain{}
}
