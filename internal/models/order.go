package models

import "time"

type OrderLineItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	PrepMinutes float64 `json:"prep_minutes"`
}

// Order moves available -> accepted -> picked_up -> delivered|failed.
type Order struct {
	ID               string           `json:"id"`
	CustomerName     string           `json:"customer_name"`
	Restaurant       Restaurant       `json:"restaurant"`
	DeliveryLocation DeliveryLocation `json:"delivery_location"`
	MenuKey          string           `json:"menu_key"`
	Items            []OrderLineItem  `json:"items"`
	Subtotal         float64          `json:"subtotal"`
	BasePay          float64          `json:"base_pay"`
	DistanceBonus    float64          `json:"distance_bonus"`
	EstimatedPay     float64          `json:"estimated_pay"`
	Bonus            float64          `json:"bonus"`
	Distance         float64          `json:"distance"` // metres, restaurant to drop-off
	PrepMinutes      float64          `json:"prep_minutes"`
	TimeLimitSeconds int              `json:"time_limit_seconds"`
	Status           string           `json:"status"`
	FailureReason    string           `json:"failure_reason,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	AcceptedAt       time.Time        `json:"accepted_at"`
	PickedUpAt       time.Time        `json:"picked_up_at"`
	CompletedAt      time.Time        `json:"completed_at"`
}

// Active reports whether the order currently occupies the delivery slot.
func (o *Order) Active() bool {
	return o != nil && (o.Status == OrderStatusAccepted || o.Status == OrderStatusPickedUp)
}

func (o *Order) Terminal() bool {
	return o != nil && (o.Status == OrderStatusDelivered || o.Status == OrderStatusFailed)
}

func (o *Order) TimeLimit() time.Duration {
	return time.Duration(o.TimeLimitSeconds) * time.Second
}

// Remaining is the countdown left on an accepted order, never negative.
func (o *Order) Remaining(now time.Time) time.Duration {
	if !o.Active() {
		return 0
	}
	left := o.TimeLimit() - now.Sub(o.AcceptedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Target is where the drone has to go next for this order.
func (o *Order) Target() Location {
	if o.Status == OrderStatusPickedUp {
		return o.DeliveryLocation.Location
	}
	return o.Restaurant.Location
}

// PayBreakdown is what a completed delivery paid out.
type PayBreakdown struct {
	Base     float64 `json:"base"`
	Distance float64 `json:"distance"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
	Rating   string  `json:"rating"`
}
