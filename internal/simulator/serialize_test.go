package simulator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/dronedash/internal/models"
)

func TestSerializeDeliveryCompleted(t *testing.T) {
	order := testOrder("s1")
	order.AcceptedAt = t0
	order.CompletedAt = t0.Add(95 * time.Second)
	event := models.Event{
		Time: t0.Add(95 * time.Second),
		Type: models.EventDeliveryCompleted,
		Data: models.DeliveryResult{
			Order: order,
			Pay:   models.PayBreakdown{Base: 6.35, Distance: 6, Total: 12.35, Rating: models.RatingGood},
		},
	}

	msg, err := serializeEvent("sess", event)
	if err != nil {
		t.Fatalf("serializeEvent: %v", err)
	}
	if msg.Topic != TopicDeliveryCompleted {
		t.Fatalf("topic got=%s want=%s", msg.Topic, TopicDeliveryCompleted)
	}
	var record DeliveryCompletedEvent
	if err := json.Unmarshal(msg.Message, &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record.SessionID != "sess" || record.OrderID != "s1" || record.RestaurantID != "r-s1" {
		t.Fatalf("ids got=%+v", record)
	}
	if record.TotalPay != 12.35 || record.Rating != models.RatingGood || record.DurationSeconds != 95 {
		t.Fatalf("pay got=%+v", record)
	}
	if record.Timestamp != event.Time.Unix() {
		t.Fatalf("timestamp got=%d want=%d", record.Timestamp, event.Time.Unix())
	}
	if record.DeliveryLat != order.DeliveryLocation.Location.Lat {
		t.Fatalf("deliveryLat got=%v", record.DeliveryLat)
	}
}

func TestSerializeQueueJoinsIDs(t *testing.T) {
	a, b := testOrder("a"), testOrder("b")
	b.Bonus = 2
	msg, err := serializeEvent("sess", models.Event{
		Time: t0,
		Type: models.EventOrderQueueChanged,
		Data: models.QueueChange{Queue: []*models.Order{a, b}},
	})
	if err != nil {
		t.Fatalf("serializeEvent: %v", err)
	}
	var record OrderQueueEvent
	if err := json.Unmarshal(msg.Message, &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record.QueueLength != 2 || record.OrderIDs != "a,b" {
		t.Fatalf("record got=%+v", record)
	}
	if record.TotalPayable < 26.69 || record.TotalPayable > 26.71 {
		t.Fatalf("totalPayable got=%v want=26.70", record.TotalPayable)
	}
}

func TestSerializeFailureMarksPickup(t *testing.T) {
	order := testOrder("f")
	order.AcceptedAt = t0
	order.PickedUpAt = t0.Add(30 * time.Second)
	order.CompletedAt = t0.Add(240 * time.Second)

	msg, err := serializeEvent("sess", models.Event{
		Time: order.CompletedAt,
		Type: models.EventDeliveryFailed,
		Data: models.DeliveryFailure{Order: order, Reason: models.FailureReasonTimeout},
	})
	if err != nil {
		t.Fatalf("serializeEvent: %v", err)
	}
	var record DeliveryFailedEvent
	if err := json.Unmarshal(msg.Message, &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !record.PickedUp || record.Reason != models.FailureReasonTimeout || record.ElapsedSeconds != 240 {
		t.Fatalf("record got=%+v", record)
	}
}

func TestSerializeRejectsTimers(t *testing.T) {
	_, err := serializeEvent("sess", models.Event{Time: t0, Type: models.EventReplenishOrders})
	if err == nil || !strings.Contains(err.Error(), "unknown event type") {
		t.Fatalf("error got=%v", err)
	}
}

func TestEveryTopicHasSchema(t *testing.T) {
	for _, topic := range Topics {
		if _, err := GetSchema(topic); err != nil {
			t.Fatalf("GetSchema(%s): %v", topic, err)
		}
	}
	if _, err := GetSchema("bogus"); err == nil {
		t.Fatalf("GetSchema(bogus) got nil error")
	}
}
