package simulator

import (
	"math"
	"time"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
)

const (
	DirectionAhead  = "ahead"
	DirectionRight  = "right"
	DirectionBehind = "behind"
	DirectionLeft   = "left"
)

// Navigation is the HUD hint for the active order.
type Navigation struct {
	Phase            string          `json:"phase"`
	Target           models.Location `json:"target"`
	Distance         float64         `json:"distance"`
	Bearing          float64         `json:"bearing"`
	RelativeBearing  float64         `json:"relative_bearing"` // -180..180, positive to the right
	Direction        string          `json:"direction"`
	RemainingSeconds float64         `json:"remaining_seconds"`
}

// NavigationFor returns nil when there is no active order.
func NavigationFor(projection geo.Projection, drone models.DroneState, order *models.Order, now time.Time) *Navigation {
	if !order.Active() {
		return nil
	}
	phase := models.NavPhasePickup
	if order.Status == models.OrderStatusPickedUp {
		phase = models.NavPhaseDelivery
	}
	pos := drone.Location()
	target := order.Target()
	bearing := geo.Bearing(pos, target)
	relative := RelativeBearing(drone.Heading, bearing)

	return &Navigation{
		Phase:            phase,
		Target:           target,
		Distance:         projection.Distance(pos, target),
		Bearing:          bearing,
		RelativeBearing:  relative,
		Direction:        DirectionFor(relative),
		RemainingSeconds: order.Remaining(now).Seconds(),
	}
}

// RelativeBearing folds bearing-heading into [-180, 180).
func RelativeBearing(heading, bearing float64) float64 {
	return geo.NormalizeDegrees(bearing-heading+180) - 180
}

// DirectionFor buckets a relative bearing into 90 degree quadrants centred
// on each direction.
func DirectionFor(relative float64) string {
	a := math.Abs(relative)
	switch {
	case a <= 45:
		return DirectionAhead
	case a >= 135:
		return DirectionBehind
	case relative > 0:
		return DirectionRight
	default:
		return DirectionLeft
	}
}
