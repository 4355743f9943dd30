// Package geo converts between geographic coordinates and a local
// tangent-plane frame in metres. x grows east, z grows south (north is -z).
// The projection is planar and is only meant for play areas a few
// kilometres across.
package geo

import (
	"math"

	"github.com/chrisdamba/dronedash/internal/models"
)

const (
	// MetersPerDegree is the length of one degree of latitude.
	MetersPerDegree = 111320.0
	earthRadius     = 6371000.0
)

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// MetersPerDegreeLon is the length of one degree of longitude at lat.
func MetersPerDegreeLon(lat float64) float64 {
	return MetersPerDegree * math.Cos(toRadians(lat))
}

// ToLocalMeters projects p into the frame centred on origin.
func ToLocalMeters(origin, p models.Location) (x, z float64) {
	x = (p.Lon - origin.Lon) * MetersPerDegreeLon(origin.Lat)
	z = -(p.Lat - origin.Lat) * MetersPerDegree
	return x, z
}

// FromLocalMeters is the inverse of ToLocalMeters.
func FromLocalMeters(origin models.Location, x, z float64) models.Location {
	return models.Location{
		Lat: origin.Lat - z/MetersPerDegree,
		Lon: origin.Lon + x/MetersPerDegreeLon(origin.Lat),
	}
}

// Distance is the planar distance between a and b using a as origin.
func Distance(a, b models.Location) float64 {
	return Projection{Origin: a}.Distance(a, b)
}

// Bearing returns the compass bearing from a to b in degrees [0, 360).
func Bearing(a, b models.Location) float64 {
	x, z := ToLocalMeters(a, b)
	return NormalizeDegrees(math.Atan2(x, -z) * 180 / math.Pi)
}

// Haversine is the great-circle distance in metres.
func Haversine(a, b models.Location) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Projection fixes the origin used for all distance math in a session.
type Projection struct {
	Origin models.Location
}

func NewProjection(origin models.Location) Projection {
	return Projection{Origin: origin}
}

func (p Projection) ToLocal(l models.Location) (x, z float64) {
	return ToLocalMeters(p.Origin, l)
}

func (p Projection) FromLocal(x, z float64) models.Location {
	return FromLocalMeters(p.Origin, x, z)
}

func (p Projection) Distance(a, b models.Location) float64 {
	x1, z1 := p.ToLocal(a)
	x2, z2 := p.ToLocal(b)
	return math.Hypot(x1-x2, z1-z2)
}

// Offset moves l by meters along bearing (radians clockwise from north).
func (p Projection) Offset(l models.Location, bearing, meters float64) models.Location {
	x, z := p.ToLocal(l)
	x += math.Sin(bearing) * meters
	z -= math.Cos(bearing) * meters
	return p.FromLocal(x, z)
}
