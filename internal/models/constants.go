package models

const (
	OrderStatusAvailable = "available"
	OrderStatusAccepted  = "accepted"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusDelivered = "delivered"
	OrderStatusFailed    = "failed"

	FailureReasonTimeout   = "timeout"
	FailureReasonCancelled = "cancelled"

	NavPhasePickup   = "pickup"
	NavPhaseDelivery = "delivery"

	RatingPerfect = "perfect"
	RatingGreat   = "great"
	RatingGood    = "good"
)
