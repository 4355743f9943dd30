package simulator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chrisdamba/dronedash/internal/models"
)

// serializeEvent flattens a lifecycle event into the record for its topic.
func serializeEvent(sessionID string, event models.Event) (models.EventMessage, error) {
	var topic string
	var eventData interface{}
	ts := event.Time.Unix()

	switch data := event.Data.(type) {
	case models.SessionChange:
		topic = TopicSession
		eventData = SessionEvent{
			Timestamp:        ts,
			EventType:        event.Type,
			SessionID:        data.SessionID,
			Earnings:         data.Score.Earnings,
			TotalDeliveries:  int64(data.Score.TotalDeliveries),
			FailedDeliveries: int64(data.Score.FailedDeliveries),
			BestStreak:       int64(data.Score.BestStreak),
		}

	case models.QueueChange:
		ids := make([]string, 0, len(data.Queue))
		var payable float64
		for _, o := range data.Queue {
			ids = append(ids, o.ID)
			payable += o.EstimatedPay + o.Bonus
		}
		topic = TopicOrderQueue
		eventData = OrderQueueEvent{
			Timestamp:    ts,
			EventType:    event.Type,
			SessionID:    sessionID,
			QueueLength:  int64(len(data.Queue)),
			OrderIDs:     strings.Join(ids, ","),
			TotalPayable: payable,
		}

	case models.StatusChange:
		o := data.Order
		topic = TopicOrderStatus
		eventData = OrderStatusEvent{
			Timestamp:        ts,
			EventType:        event.Type,
			SessionID:        sessionID,
			OrderID:          o.ID,
			RestaurantID:     o.Restaurant.Key(),
			RestaurantName:   o.Restaurant.Name,
			FromStatus:       data.From,
			ToStatus:         data.To,
			Distance:         o.Distance,
			TimeLimitSeconds: int64(o.TimeLimitSeconds),
		}

	case models.DeliveryResult:
		o := data.Order
		topic = TopicDeliveryCompleted
		eventData = DeliveryCompletedEvent{
			Timestamp:       ts,
			EventType:       event.Type,
			SessionID:       sessionID,
			OrderID:         o.ID,
			RestaurantID:    o.Restaurant.Key(),
			CustomerName:    o.CustomerName,
			DeliveryAddress: o.DeliveryLocation.Address,
			DeliveryLat:     o.DeliveryLocation.Location.Lat,
			DeliveryLon:     o.DeliveryLocation.Location.Lon,
			Distance:        o.Distance,
			BasePay:         data.Pay.Base,
			DistancePay:     data.Pay.Distance,
			Tip:             data.Pay.Tip,
			TotalPay:        data.Pay.Total,
			Rating:          data.Pay.Rating,
			DurationSeconds: o.CompletedAt.Sub(o.AcceptedAt).Seconds(),
		}

	case models.DeliveryFailure:
		o := data.Order
		topic = TopicDeliveryFailed
		eventData = DeliveryFailedEvent{
			Timestamp:      ts,
			EventType:      event.Type,
			SessionID:      sessionID,
			OrderID:        o.ID,
			RestaurantID:   o.Restaurant.Key(),
			Reason:         data.Reason,
			PickedUp:       !o.PickedUpAt.IsZero(),
			ElapsedSeconds: o.CompletedAt.Sub(o.AcceptedAt).Seconds(),
		}

	case models.ScoreChange:
		topic = TopicScore
		eventData = ScoreEvent{
			Timestamp:        ts,
			EventType:        event.Type,
			SessionID:        sessionID,
			Earnings:         data.Score.Earnings,
			TotalDeliveries:  int64(data.Score.TotalDeliveries),
			FailedDeliveries: int64(data.Score.FailedDeliveries),
			Streak:           int64(data.Score.Streak),
			BestStreak:       int64(data.Score.BestStreak),
		}

	default:
		return models.EventMessage{}, fmt.Errorf("unknown event type: %s", event.Type)
	}

	jsonData, err := json.Marshal(eventData)
	if err != nil {
		return models.EventMessage{}, fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}
	return models.EventMessage{Topic: topic, Message: jsonData}, nil
}
