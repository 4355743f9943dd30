package simulator

import (
	"testing"

	"github.com/chrisdamba/dronedash/internal/models"
)

type recordingPresenter struct {
	events []models.Event
}

func (p *recordingPresenter) HandleEvent(e models.Event) {
	p.events = append(p.events, e)
}

func TestEventBusDispatchOrder(t *testing.T) {
	bus := NewEventBus()
	var calls []string
	bus.Subscribe(models.EventScoreChanged, func(models.Event) { calls = append(calls, "score-1") })
	bus.SubscribeAll(func(models.Event) { calls = append(calls, "all") })
	bus.Subscribe(models.EventScoreChanged, func(models.Event) { calls = append(calls, "score-2") })

	bus.Emit(models.Event{Type: models.EventScoreChanged})
	bus.Emit(models.Event{Type: models.EventSessionPaused})

	want := []string{"score-1", "score-2", "all", "all"}
	if len(calls) != len(want) {
		t.Fatalf("calls got=%v want=%v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls got=%v want=%v", calls, want)
		}
	}
}

func TestPresenterSeesSessionEvents(t *testing.T) {
	s := newTestSession(testRestaurants(4))
	p := &recordingPresenter{}
	s.Bus.Attach(p)

	s.Start(t0)
	s.AcceptNext(t0)
	s.Cancel(t0)

	var types []string
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	last := types[len(types)-1]
	if types[0] != models.EventSessionStarted || last != models.EventScoreChanged {
		t.Fatalf("presenter got=%v", types)
	}
}
