package simulator

import (
	"errors"
	"time"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
)

var (
	ErrDeliveryInProgress = errors.New("a delivery is already in progress")
	ErrOrderNotFound      = errors.New("order is not in the queue")
	ErrNoActiveOrder      = errors.New("no active delivery")
)

// DeliveryRules drives an order through accepted -> picked_up ->
// delivered, or to failed on timeout or cancel. Its methods only touch the
// GameSession they are given and return the events they caused.
type DeliveryRules struct {
	PickupRadius       float64
	DeliveryRadius     float64
	MaxTriggerAltitude float64
	Projection         geo.Projection
}

func NewDeliveryRules(cfg models.DeliveryConfig, projection geo.Projection) DeliveryRules {
	return DeliveryRules{
		PickupRadius:       cfg.PickupRadius,
		DeliveryRadius:     cfg.DeliveryRadius,
		MaxTriggerAltitude: cfg.MaxTriggerAltitude,
		Projection:         projection,
	}
}

// Accept moves a queued order into the current slot. Nothing changes when
// another order is still active or the id is unknown.
func (r DeliveryRules) Accept(gs *models.GameSession, orderID string, now time.Time) ([]models.Event, error) {
	if gs.CurrentOrder.Active() {
		return nil, ErrDeliveryInProgress
	}
	order, idx := gs.FindQueued(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}

	gs.OrderQueue = append(gs.OrderQueue[:idx:idx], gs.OrderQueue[idx+1:]...)
	from := order.Status
	order.Status = models.OrderStatusAccepted
	order.AcceptedAt = now
	gs.CurrentOrder = order

	return []models.Event{
		queueChanged(gs, now),
		statusChanged(order, from, now),
	}, nil
}

// Cancel fails the active order on the player's request.
func (r DeliveryRules) Cancel(gs *models.GameSession, now time.Time) []models.Event {
	if !gs.CurrentOrder.Active() {
		return nil
	}
	return r.fail(gs, models.FailureReasonCancelled, now)
}

// CheckTimeout fails the active order once its time limit has elapsed.
// Calling it again after that is a no-op since the slot is empty.
func (r DeliveryRules) CheckTimeout(gs *models.GameSession, now time.Time) []models.Event {
	o := gs.CurrentOrder
	if !o.Active() || now.Sub(o.AcceptedAt) < o.TimeLimit() {
		return nil
	}
	return r.fail(gs, models.FailureReasonTimeout, now)
}

// Evaluate runs one frame of the delivery rules against the drone. The
// timeout wins over proximity when both hold on the same frame.
func (r DeliveryRules) Evaluate(gs *models.GameSession, drone models.DroneState, groundHeight float64, now time.Time) []models.Event {
	if !gs.IsPlaying || gs.IsPaused {
		return nil
	}
	if events := r.CheckTimeout(gs, now); len(events) > 0 {
		return events
	}

	o := gs.CurrentOrder
	if !o.Active() || drone.Altitude-groundHeight >= r.MaxTriggerAltitude {
		return nil
	}

	pos := drone.Location()
	switch o.Status {
	case models.OrderStatusAccepted:
		if r.Projection.Distance(pos, o.Restaurant.Location) < r.PickupRadius {
			o.Status = models.OrderStatusPickedUp
			o.PickedUpAt = now
			return []models.Event{statusChanged(o, models.OrderStatusAccepted, now)}
		}
	case models.OrderStatusPickedUp:
		if r.Projection.Distance(pos, o.DeliveryLocation.Location) < r.DeliveryRadius {
			return r.complete(gs, now)
		}
	}
	return nil
}

func (r DeliveryRules) complete(gs *models.GameSession, now time.Time) []models.Event {
	o := gs.CurrentOrder
	pay := models.PayBreakdown{
		Base:     o.BasePay,
		Distance: o.DistanceBonus,
		Tip:      o.Bonus,
		Total:    o.EstimatedPay + o.Bonus,
	}

	gs.Earnings += pay.Total
	gs.TotalDeliveries++
	gs.Streak++
	if gs.Streak > gs.BestStreak {
		gs.BestStreak = gs.Streak
	}
	pay.Rating = ratingFor(gs.Streak)

	o.Status = models.OrderStatusDelivered
	o.CompletedAt = now
	gs.CurrentOrder = nil

	return []models.Event{
		statusChanged(o, models.OrderStatusPickedUp, now),
		{Time: now, Type: models.EventDeliveryCompleted, Data: models.DeliveryResult{Order: o, Pay: pay}},
		scoreChanged(gs, now),
	}
}

func (r DeliveryRules) fail(gs *models.GameSession, reason string, now time.Time) []models.Event {
	o := gs.CurrentOrder
	from := o.Status
	o.Status = models.OrderStatusFailed
	o.FailureReason = reason
	o.CompletedAt = now

	gs.Streak = 0
	gs.FailedDeliveries++
	gs.CurrentOrder = nil

	return []models.Event{
		statusChanged(o, from, now),
		{Time: now, Type: models.EventDeliveryFailed, Data: models.DeliveryFailure{Order: o, Reason: reason}},
		scoreChanged(gs, now),
	}
}

// ratingFor grades a delivery by the streak it extends.
func ratingFor(streak int) string {
	switch {
	case streak > 2:
		return models.RatingPerfect
	case streak > 1:
		return models.RatingGreat
	default:
		return models.RatingGood
	}
}

func statusChanged(o *models.Order, from string, now time.Time) models.Event {
	return models.Event{
		Time: now,
		Type: models.EventOrderStatusChanged,
		Data: models.StatusChange{Order: o, From: from, To: o.Status},
	}
}

func queueChanged(gs *models.GameSession, now time.Time) models.Event {
	return models.Event{
		Time: now,
		Type: models.EventOrderQueueChanged,
		Data: models.QueueChange{Queue: gs.QueueSnapshot()},
	}
}

func scoreChanged(gs *models.GameSession, now time.Time) models.Event {
	return models.Event{
		Time: now,
		Type: models.EventScoreChanged,
		Data: models.ScoreChange{Score: gs.Score()},
	}
}
