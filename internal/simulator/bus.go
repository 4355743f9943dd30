package simulator

import "github.com/chrisdamba/dronedash/internal/models"

// Presenter is the surface a renderer or HUD implements to hear about
// lifecycle changes. The core never calls rendering code directly.
type Presenter interface {
	HandleEvent(models.Event)
}

type EventHandler func(models.Event)

// EventBus fans lifecycle events out to subscribers synchronously, in
// subscription order.
type EventBus struct {
	handlers map[string][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(eventType string, fn EventHandler) {
	eb.handlers[eventType] = append(eb.handlers[eventType], fn)
}

func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Attach(p Presenter) {
	eb.SubscribeAll(p.HandleEvent)
}

func (eb *EventBus) Emit(e models.Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
