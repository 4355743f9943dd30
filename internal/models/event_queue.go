package models

import (
	"container/heap"
	"sync"
	"time"
)

const (
	EventSessionStarted     = "SessionStarted"
	EventSessionPaused      = "SessionPaused"
	EventSessionResumed     = "SessionResumed"
	EventSessionStopped     = "SessionStopped"
	EventOrderQueueChanged  = "OrderQueueChanged"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventDeliveryCompleted  = "DeliveryCompleted"
	EventDeliveryFailed     = "DeliveryFailed"
	EventScoreChanged       = "ScoreChanged"

	// timers, never published
	EventReplenishOrders = "ReplenishOrders"
)

// Event is either a lifecycle notification for listeners or a timer
// waiting in an EventQueue.
type Event struct {
	Time time.Time
	Type string
	Data interface{}
}

type SessionChange struct {
	SessionID string
	Score     Score
}

type QueueChange struct {
	Queue []*Order
}

type StatusChange struct {
	Order *Order
	From  string
	To    string
}

type DeliveryResult struct {
	Order *Order
	Pay   PayBreakdown
}

type DeliveryFailure struct {
	Order  *Order
	Reason string
}

type ScoreChange struct {
	Score Score
}

// EventMessage is a serialized event ready for an output sink.
type EventMessage struct {
	Topic   string
	Message []byte
}

// EventQueue is a time-ordered priority queue of events
type EventQueue struct {
	events []*Event
	mutex  sync.Mutex
}

type eventHeap []*Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].Time.Before(h[j].Time) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]*Event, 0)}
}

func (eq *EventQueue) Enqueue(event *Event) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	heap.Push((*eventHeap)(&eq.events), event)
}

// Dequeue removes and returns the earliest event from the queue
func (eq *EventQueue) Dequeue() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return heap.Pop((*eventHeap)(&eq.events)).(*Event)
}

func (eq *EventQueue) Peek() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0]
}

// DequeueDue pops every event scheduled at or before now, earliest first.
func (eq *EventQueue) DequeueDue(now time.Time) []*Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	var due []*Event
	for len(eq.events) > 0 && !eq.events[0].Time.After(now) {
		due = append(due, heap.Pop((*eventHeap)(&eq.events)).(*Event))
	}
	return due
}

func (eq *EventQueue) IsEmpty() bool {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events) == 0
}

func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events)
}

// Clear drops every pending event.
func (eq *EventQueue) Clear() {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	eq.events = eq.events[:0]
}
