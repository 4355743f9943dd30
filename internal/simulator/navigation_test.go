package simulator

import (
	"math"
	"testing"
	"time"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
)

func TestRelativeBearing(t *testing.T) {
	tests := []struct {
		heading, bearing, want float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, -180},
		{270, 90, -180},
	}
	for _, tt := range tests {
		if got := RelativeBearing(tt.heading, tt.bearing); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("RelativeBearing(%v, %v) got=%v want=%v", tt.heading, tt.bearing, got, tt.want)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		relative float64
		want     string
	}{
		{0, DirectionAhead},
		{45, DirectionAhead},
		{-45, DirectionAhead},
		{46, DirectionRight},
		{-90, DirectionLeft},
		{135, DirectionBehind},
		{-180, DirectionBehind},
	}
	for _, tt := range tests {
		if got := DirectionFor(tt.relative); got != tt.want {
			t.Fatalf("DirectionFor(%v) got=%s want=%s", tt.relative, got, tt.want)
		}
	}
}

func TestNavigationForPhases(t *testing.T) {
	proj := geo.NewProjection(origin)
	if nav := NavigationFor(proj, droneAt(origin, 40), nil, t0); nav != nil {
		t.Fatalf("navigation without order got=%+v", nav)
	}

	order := testOrder("n")
	order.Status = models.OrderStatusAccepted
	order.AcceptedAt = t0

	// Drone 100m south of the restaurant, facing north.
	drone := droneAt(proj.Offset(origin, math.Pi, 100), 40)
	nav := NavigationFor(proj, drone, order, t0.Add(40*time.Second))
	if nav.Phase != models.NavPhasePickup || nav.Direction != DirectionAhead {
		t.Fatalf("pickup nav got=%+v", nav)
	}
	if math.Abs(nav.Distance-100) > 0.5 {
		t.Fatalf("distance got=%v want=100", nav.Distance)
	}
	if nav.RemainingSeconds != 200 {
		t.Fatalf("remaining got=%v want=200", nav.RemainingSeconds)
	}

	order.Status = models.OrderStatusPickedUp
	drone.Heading = 180
	nav = NavigationFor(proj, drone, order, t0.Add(40*time.Second))
	if nav.Phase != models.NavPhaseDelivery || nav.Target != order.DeliveryLocation.Location {
		t.Fatalf("delivery nav got=%+v", nav)
	}
	if nav.Direction != DirectionBehind {
		t.Fatalf("direction got=%s want=%s", nav.Direction, DirectionBehind)
	}
}
