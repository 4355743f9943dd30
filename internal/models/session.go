package models

import "time"

// GameSession holds score and order slots for one play-through.
type GameSession struct {
	ID               string    `json:"id"`
	IsPlaying        bool      `json:"is_playing"`
	IsPaused         bool      `json:"is_paused"`
	Earnings         float64   `json:"earnings"`
	TotalDeliveries  int       `json:"total_deliveries"`
	FailedDeliveries int       `json:"failed_deliveries"`
	Streak           int       `json:"streak"`
	BestStreak       int       `json:"best_streak"`
	OrderQueue       []*Order  `json:"order_queue"`
	CurrentOrder     *Order    `json:"current_order"`
	StartedAt        time.Time `json:"started_at"`
	PausedAt         time.Time `json:"paused_at"`
	GameTime         float64   `json:"game_time"` // seconds of unpaused play
}

// Score is the scoring subset published on every change.
type Score struct {
	Earnings         float64 `json:"earnings"`
	TotalDeliveries  int     `json:"total_deliveries"`
	FailedDeliveries int     `json:"failed_deliveries"`
	Streak           int     `json:"streak"`
	BestStreak       int     `json:"best_streak"`
}

func (gs *GameSession) Score() Score {
	return Score{
		Earnings:         gs.Earnings,
		TotalDeliveries:  gs.TotalDeliveries,
		FailedDeliveries: gs.FailedDeliveries,
		Streak:           gs.Streak,
		BestStreak:       gs.BestStreak,
	}
}

// FindQueued returns the queued order with the given id and its index.
func (gs *GameSession) FindQueued(id string) (*Order, int) {
	for i, o := range gs.OrderQueue {
		if o.ID == id {
			return o, i
		}
	}
	return nil, -1
}

// QueueSnapshot copies the pending queue so listeners never alias it.
func (gs *GameSession) QueueSnapshot() []*Order {
	out := make([]*Order, len(gs.OrderQueue))
	copy(out, gs.OrderQueue)
	return out
}
