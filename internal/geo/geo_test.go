package geo

import (
	"math"
	"testing"

	"github.com/chrisdamba/dronedash/internal/models"
)

var nyc = models.Location{Lat: 40.7128, Lon: -74.0060}

func TestToLocalMetersAxes(t *testing.T) {
	north := models.Location{Lat: nyc.Lat + 0.001, Lon: nyc.Lon}
	x, z := ToLocalMeters(nyc, north)
	if math.Abs(x) > 1e-9 {
		t.Fatalf("north point should have no east offset, got x=%f", x)
	}
	if math.Abs(z+111.32) > 1e-6 {
		t.Fatalf("north point z got=%f want≈-111.32", z)
	}

	east := models.Location{Lat: nyc.Lat, Lon: nyc.Lon + 0.001}
	x, z = ToLocalMeters(nyc, east)
	want := 111.32 * math.Cos(nyc.Lat*math.Pi/180)
	if math.Abs(x-want) > 1e-6 || z != 0 {
		t.Fatalf("east point got=(%f,%f) want≈(%f,0)", x, z, want)
	}
}

func TestRoundTripWithinFiveKilometres(t *testing.T) {
	for _, d := range []struct{ x, z float64 }{
		{0, 0}, {120, -340}, {-2500, 4000}, {3535, 3535}, {-4999, 0},
	} {
		p := FromLocalMeters(nyc, d.x, d.z)
		x, z := ToLocalMeters(nyc, p)
		if math.Abs(x-d.x) > 1e-6 || math.Abs(z-d.z) > 1e-6 {
			t.Fatalf("round trip got=(%f,%f) want=(%f,%f)", x, z, d.x, d.z)
		}
		back := FromLocalMeters(nyc, x, z)
		if math.Abs(back.Lat-p.Lat) > 1e-12 || math.Abs(back.Lon-p.Lon) > 1e-12 {
			t.Fatalf("geo round trip drifted: %v vs %v", back, p)
		}
	}
}

func TestPlanarDistanceTracksHaversine(t *testing.T) {
	proj := NewProjection(nyc)
	for _, bearing := range []float64{0, 0.7, math.Pi / 2, 2.5, math.Pi, 4.1, 5.9} {
		p := proj.Offset(nyc, bearing, 3000)
		planar := proj.Distance(nyc, p)
		if math.Abs(planar-3000) > 1e-6 {
			t.Fatalf("offset distance got=%f want=3000 (bearing %f)", planar, bearing)
		}
		// planar approximation stays within half a percent at this range
		if great := Haversine(nyc, p); math.Abs(great-planar)/planar > 0.005 {
			t.Fatalf("planar=%f haversine=%f diverge at bearing %f", planar, great, bearing)
		}
	}
}

func TestBearing(t *testing.T) {
	proj := NewProjection(nyc)
	for _, deg := range []float64{0, 45, 90, 180, 270, 315} {
		p := proj.Offset(nyc, deg*math.Pi/180, 500)
		got := Bearing(nyc, p)
		diff := math.Abs(got - deg)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 1e-6 {
			t.Fatalf("bearing got=%f want=%f", got, deg)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float64]float64{-90: 270, 360: 0, 725: 5, 0: 0, -720: 0}
	for in, want := range cases {
		if got := NormalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("NormalizeDegrees(%f) got=%f want=%f", in, got, want)
		}
	}
}
