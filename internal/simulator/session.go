package simulator

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chrisdamba/dronedash/internal/factories"
	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/menu"
	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSessionNotRunning = errors.New("session is not running")
	ErrSessionPaused     = errors.New("session is paused")
)

// Session is one play-through: the drone, its score and the order queue.
// It is driven from a single goroutine and every call takes the current
// time explicitly.
type Session struct {
	Config  *models.Config
	Game    models.GameSession
	Drone   models.DroneState
	Flight  *FlightModel
	Rules   DeliveryRules
	Orders  *factories.OrderFactory
	Terrain TerrainProvider
	Bus     *EventBus

	projection  geo.Projection
	restaurants []models.Restaurant
	timers      *models.EventQueue
	rng         factories.Rand
	lastTick    time.Time
}

// NewSession wires a session around the spawn point in cfg. Restaurants
// with unusable coordinates are dropped here so order generation never
// sees them.
func NewSession(cfg *models.Config, restaurants []models.Restaurant, catalog *menu.Catalog, terrain TerrainProvider, rng factories.Rand) *Session {
	projection := geo.NewProjection(models.Location{Lat: cfg.SpawnLat, Lon: cfg.SpawnLon})

	valid := make([]models.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		if !restaurants[i].Valid() {
			log.Printf("Skipping restaurant %q with invalid location %s", restaurants[i].Name, restaurants[i].Location)
			continue
		}
		valid = append(valid, restaurants[i])
	}

	return &Session{
		Config:      cfg,
		Game:        models.GameSession{ID: uuid.NewString()},
		Flight:      NewFlightModel(cfg.Flight),
		Rules:       NewDeliveryRules(cfg.Delivery, projection),
		Orders:      factories.NewOrderFactory(cfg.Orders, catalog, projection, rng),
		Terrain:     terrain,
		Bus:         NewEventBus(),
		projection:  projection,
		restaurants: valid,
		timers:      models.NewEventQueue(),
		rng:         rng,
	}
}

func (s *Session) Restaurants() []models.Restaurant {
	return s.restaurants
}

// Start resets the score, respawns the drone and deals the opening orders.
func (s *Session) Start(now time.Time) []models.Event {
	s.timers.Clear()
	s.Game = models.GameSession{
		ID:        uuid.NewString(),
		IsPlaying: true,
		StartedAt: now,
	}
	s.spawnDrone()
	s.lastTick = now

	events := []models.Event{{
		Time: now,
		Type: models.EventSessionStarted,
		Data: models.SessionChange{SessionID: s.Game.ID, Score: s.Game.Score()},
	}}
	events = append(events, s.addOrders(s.Config.Session.InitialOrders, now)...)
	s.scheduleReplenish(now.Add(s.Config.Session.ReplenishInterval))

	log.Printf("Session %s started with %d restaurants and %d orders", s.Game.ID, len(s.restaurants), len(s.Game.OrderQueue))
	s.publish(events)
	return events
}

func (s *Session) spawnDrone() {
	ground := groundAt(s.Terrain, s.Config.SpawnLon, s.Config.SpawnLat)
	s.Drone = models.DroneState{
		Lon:      s.Config.SpawnLon,
		Lat:      s.Config.SpawnLat,
		Altitude: ground + s.Config.SpawnAltitude,
	}
	s.Flight.ClampAltitude(&s.Drone, ground)
}

func (s *Session) Pause(now time.Time) []models.Event {
	if !s.Game.IsPlaying || s.Game.IsPaused {
		return nil
	}
	s.Game.IsPaused = true
	s.Game.PausedAt = now
	log.Printf("Session %s paused", s.Game.ID)
	return s.publishOne(now, models.EventSessionPaused)
}

// Resume unpauses and pushes the active order's deadline back by the time
// spent paused.
func (s *Session) Resume(now time.Time) []models.Event {
	if !s.Game.IsPlaying || !s.Game.IsPaused {
		return nil
	}
	paused := now.Sub(s.Game.PausedAt)
	if o := s.Game.CurrentOrder; o.Active() && paused > 0 {
		o.AcceptedAt = o.AcceptedAt.Add(paused)
	}
	s.Game.IsPaused = false
	s.Game.PausedAt = time.Time{}
	log.Printf("Session %s resumed after %s", s.Game.ID, paused)
	return s.publishOne(now, models.EventSessionResumed)
}

func (s *Session) TogglePause(now time.Time) []models.Event {
	if s.Game.IsPaused {
		return s.Resume(now)
	}
	return s.Pause(now)
}

// Stop ends the session, dropping pending timers, queued orders and the
// active delivery without scoring it.
func (s *Session) Stop(now time.Time) []models.Event {
	if !s.Game.IsPlaying {
		return nil
	}
	s.timers.Clear()
	s.Game.IsPlaying = false
	s.Game.IsPaused = false
	s.Game.OrderQueue = nil
	s.Game.CurrentOrder = nil

	events := []models.Event{
		queueChanged(&s.Game, now),
		{
			Time: now,
			Type: models.EventSessionStopped,
			Data: models.SessionChange{SessionID: s.Game.ID, Score: s.Game.Score()},
		},
	}
	log.Printf("Session %s stopped: %d delivered, %d failed, earned $%.2f",
		s.Game.ID, s.Game.TotalDeliveries, s.Game.FailedDeliveries, s.Game.Earnings)
	s.publish(events)
	return events
}

func (s *Session) Accept(orderID string, now time.Time) ([]models.Event, error) {
	if err := s.checkRunning(); err != nil {
		return nil, err
	}
	events, err := s.Rules.Accept(&s.Game, orderID, now)
	if err != nil {
		return nil, fmt.Errorf("accepting order %s: %w", orderID, err)
	}
	o := s.Game.CurrentOrder
	log.Printf("Order %s accepted: %s to %s, %.0fm, %ds", o.ID, o.Restaurant.Name, o.DeliveryLocation.Address, o.Distance, o.TimeLimitSeconds)
	s.publish(events)
	return events, nil
}

// AcceptNext accepts the oldest queued order.
func (s *Session) AcceptNext(now time.Time) ([]models.Event, error) {
	if err := s.checkRunning(); err != nil {
		return nil, err
	}
	if len(s.Game.OrderQueue) == 0 {
		return nil, ErrOrderNotFound
	}
	return s.Accept(s.Game.OrderQueue[0].ID, now)
}

func (s *Session) Cancel(now time.Time) ([]models.Event, error) {
	if !s.Game.CurrentOrder.Active() {
		return nil, ErrNoActiveOrder
	}
	id := s.Game.CurrentOrder.ID
	events := s.Rules.Cancel(&s.Game, now)
	log.Printf("Order %s cancelled, streak reset", id)
	s.publish(events)
	return events, nil
}

func (s *Session) checkRunning() error {
	switch {
	case !s.Game.IsPlaying:
		return ErrSessionNotRunning
	case s.Game.IsPaused:
		return ErrSessionPaused
	}
	return nil
}

// Tick advances the session to now. The drone flies whether or not a game
// is running; timers and delivery rules only run while playing.
func (s *Session) Tick(now time.Time, controls models.Controls) []models.Event {
	dt := 0.0
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
	s.Flight.Step(&s.Drone, controls, dt, s.Terrain)

	if !s.Game.IsPlaying {
		return nil
	}
	if !s.Game.IsPaused && dt > 0 {
		s.Game.GameTime += dt
	}

	events := s.runTimers(now)

	ground := groundAt(s.Terrain, s.Drone.Lon, s.Drone.Lat)
	outcome := s.Rules.Evaluate(&s.Game, s.Drone, ground, now)
	for _, e := range outcome {
		s.logOutcome(e)
	}
	events = append(events, outcome...)
	if completed(outcome) && len(s.Game.OrderQueue) < s.Config.Session.RefillThreshold {
		events = append(events, s.addOrders(s.Config.Session.RefillCount, now)...)
	}

	s.publish(events)
	return events
}

func completed(events []models.Event) bool {
	for _, e := range events {
		if e.Type == models.EventDeliveryCompleted {
			return true
		}
	}
	return false
}

func (s *Session) logOutcome(e models.Event) {
	switch data := e.Data.(type) {
	case models.StatusChange:
		if data.To == models.OrderStatusPickedUp {
			log.Printf("Order %s picked up at %s", data.Order.ID, data.Order.Restaurant.Name)
		}
	case models.DeliveryResult:
		log.Printf("Order %s delivered to %s for $%.2f (%s)", data.Order.ID, data.Order.DeliveryLocation.Address, data.Pay.Total, data.Pay.Rating)
	case models.DeliveryFailure:
		log.Printf("Order %s failed: %s", data.Order.ID, data.Reason)
	}
}

// runTimers fires due replenish timers. A replenish that lands while
// paused is skipped but still rescheduled.
func (s *Session) runTimers(now time.Time) []models.Event {
	var events []models.Event
	for _, timer := range s.timers.DequeueDue(now) {
		switch timer.Type {
		case models.EventReplenishOrders:
			if !s.Game.IsPaused {
				events = append(events, s.addOrders(1, now)...)
			}
			next := timer.Time.Add(s.Config.Session.ReplenishInterval)
			if !next.After(now) {
				next = now.Add(s.Config.Session.ReplenishInterval)
			}
			s.scheduleReplenish(next)
		}
	}
	return events
}

func (s *Session) scheduleReplenish(at time.Time) {
	if s.Config.Session.ReplenishInterval <= 0 {
		return
	}
	s.timers.Enqueue(&models.Event{Time: at, Type: models.EventReplenishOrders})
}

// addOrders appends up to count new orders without exceeding MaxQueue.
func (s *Session) addOrders(count int, now time.Time) []models.Event {
	added := 0
	for i := 0; i < count && len(s.Game.OrderQueue) < s.Config.Session.MaxQueue; i++ {
		restaurant, ok := s.pickRestaurant()
		if !ok {
			break
		}
		order, err := s.Orders.GenerateOrder(restaurant, now)
		if err != nil {
			log.Printf("Error generating order: %v", err)
			continue
		}
		s.Game.OrderQueue = append(s.Game.OrderQueue, order)
		added++
	}
	if added == 0 {
		return nil
	}
	return []models.Event{queueChanged(&s.Game, now)}
}

// pickRestaurant prefers restaurants not already in the queue or on the
// active order, and falls back to repeats once every one is taken.
func (s *Session) pickRestaurant() (*models.Restaurant, bool) {
	if len(s.restaurants) == 0 {
		return nil, false
	}
	taken := make(map[string]bool, len(s.Game.OrderQueue)+1)
	for _, o := range s.Game.OrderQueue {
		taken[o.Restaurant.Key()] = true
	}
	if o := s.Game.CurrentOrder; o != nil {
		taken[o.Restaurant.Key()] = true
	}

	free := make([]int, 0, len(s.restaurants))
	for i := range s.restaurants {
		if !taken[s.restaurants[i].Key()] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return &s.restaurants[s.rng.Intn(len(s.restaurants))], true
	}
	return &s.restaurants[free[s.rng.Intn(len(free))]], true
}

func (s *Session) publishOne(now time.Time, eventType string) []models.Event {
	events := []models.Event{{
		Time: now,
		Type: eventType,
		Data: models.SessionChange{SessionID: s.Game.ID, Score: s.Game.Score()},
	}}
	s.publish(events)
	return events
}

func (s *Session) publish(events []models.Event) {
	for _, e := range events {
		s.Bus.Emit(e)
	}
}

// SessionSnapshot is the polled view a HUD draws from.
type SessionSnapshot struct {
	Game       models.GameSession
	Drone      models.DroneState
	Navigation *Navigation
	Ground     float64
}

func (s *Session) Snapshot(now time.Time) SessionSnapshot {
	game := s.Game
	game.OrderQueue = s.Game.QueueSnapshot()
	if s.Game.CurrentOrder != nil {
		current := *s.Game.CurrentOrder
		game.CurrentOrder = &current
	}
	return SessionSnapshot{
		Game:       game,
		Drone:      s.Drone,
		Navigation: NavigationFor(s.projection, s.Drone, s.Game.CurrentOrder, now),
		Ground:     groundAt(s.Terrain, s.Drone.Lon, s.Drone.Lat),
	}
}
