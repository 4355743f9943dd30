package models

import (
	"testing"
	"time"
)

func TestOrderRemaining(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o := &Order{Status: OrderStatusAccepted, AcceptedAt: start, TimeLimitSeconds: 240}

	if got := o.Remaining(start.Add(40 * time.Second)); got != 200*time.Second {
		t.Fatalf("remaining got=%v want=200s", got)
	}
	if got := o.Remaining(start.Add(time.Hour)); got != 0 {
		t.Fatalf("remaining past limit got=%v want=0", got)
	}
	o.Status = OrderStatusDelivered
	if got := o.Remaining(start); got != 0 {
		t.Fatalf("remaining on delivered got=%v want=0", got)
	}

	var none *Order
	if none.Active() || none.Terminal() {
		t.Fatalf("nil order reported active or terminal")
	}
}

func TestOrderTarget(t *testing.T) {
	shop := Location{Lat: 40.71, Lon: -74.0}
	drop := Location{Lat: 40.72, Lon: -74.01}
	o := &Order{
		Status:           OrderStatusAccepted,
		Restaurant:       Restaurant{Name: "Shop", Location: shop},
		DeliveryLocation: DeliveryLocation{Location: drop},
	}
	if o.Target() != shop {
		t.Fatalf("accepted target got=%v want=%v", o.Target(), shop)
	}
	o.Status = OrderStatusPickedUp
	if o.Target() != drop {
		t.Fatalf("picked up target got=%v want=%v", o.Target(), drop)
	}
}

func TestFindQueuedAndSnapshot(t *testing.T) {
	gs := &GameSession{OrderQueue: []*Order{{ID: "a"}, {ID: "b"}}}
	if o, idx := gs.FindQueued("b"); o == nil || idx != 1 {
		t.Fatalf("FindQueued(b) got=%v,%d", o, idx)
	}
	if o, idx := gs.FindQueued("z"); o != nil || idx != -1 {
		t.Fatalf("FindQueued(z) got=%v,%d", o, idx)
	}
	snap := gs.QueueSnapshot()
	snap[0] = nil
	if gs.OrderQueue[0] == nil {
		t.Fatalf("snapshot aliased the queue")
	}
}
