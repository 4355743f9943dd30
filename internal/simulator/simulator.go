package simulator

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/chrisdamba/dronedash/internal/factories"
	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/menu"
	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/chrisdamba/dronedash/internal/output"
	"github.com/chrisdamba/dronedash/internal/repositories"
	"github.com/chrisdamba/dronedash/internal/repositories/postgres"
	"github.com/chrisdamba/dronedash/internal/simulator/producers"
	"github.com/schollz/progressbar/v3"
)

// Simulator plays one headless session with the autopilot and streams its
// events to the configured outputs.
type Simulator struct {
	Config      *models.Config
	Session     *Session
	Autopilot   *Autopilot
	CurrentTime time.Time
	Rng         *rand.Rand
	Progress    io.Writer

	output      OutputDestination
	eventsCount int
}

func NewSimulator(config *models.Config) *Simulator {
	return &Simulator{
		Config:      config,
		Autopilot:   NewAutopilot(config),
		CurrentTime: time.Now().UTC().Truncate(time.Second),
		Rng:         rand.New(rand.NewSource(config.Seed)),
		Progress:    os.Stderr,
	}
}

func (s *Simulator) center() models.Location {
	return models.Location{Lat: s.Config.SpawnLat, Lon: s.Config.SpawnLon}
}

func (s *Simulator) initializeData(ctx context.Context) error {
	catalog := menu.Default()
	if s.Config.MenuFile != "" {
		var err error
		catalog, err = menu.LoadCatalog(s.Config.MenuFile)
		if err != nil {
			return err
		}
	}

	restaurants := s.loadRestaurants(ctx)
	s.Session = NewSession(s.Config, restaurants, catalog, newTerrain(s.Config), s.Rng)
	if len(s.Session.Restaurants()) == 0 {
		return fmt.Errorf("no usable restaurants around %s", s.center())
	}
	return nil
}

// loadRestaurants asks the database first and falls back to a generated
// ring around spawn. Generated restaurants are saved back when a database
// is configured but empty.
func (s *Simulator) loadRestaurants(ctx context.Context) []models.Restaurant {
	var repo repositories.RestaurantRepository
	if s.Config.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, s.Config.DatabaseURL)
		if err != nil {
			log.Printf("Restaurant discovery unavailable: %v", err)
		} else {
			defer pool.Close()
			repo = postgres.NewRestaurantRepository(pool)
			found, err := repo.FindNearby(ctx, s.center(), s.Config.SearchRadius, s.Config.MaxRestaurants)
			if err != nil {
				log.Printf("Restaurant discovery failed: %v", err)
			} else if len(found) > 0 {
				log.Printf("Discovered %d restaurants within %.0fm", len(found), s.Config.SearchRadius)
				return found
			}
		}
	}

	rf := factories.NewRestaurantFactory(s.Config.Seed, geo.NewProjection(s.center()))
	restaurants := rf.CreateRestaurants(s.center(), s.Config.RestaurantCount)
	log.Printf("Generated %d fallback restaurants", len(restaurants))

	if repo != nil {
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("Error preparing restaurants table: %v", err)
		} else if err := repo.BulkCreate(ctx, restaurants); err != nil {
			log.Printf("Error saving fallback restaurants: %v", err)
		}
	}
	return restaurants
}

func (s *Simulator) determineOutputDestination(ctx context.Context) (OutputDestination, error) {
	var outputs MultiOutput

	if s.Config.KafkaEnabled {
		saramaProducer, err := producers.NewSaramaProducer(s.Config)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, saramaProducer)
	} else {
		switch s.Config.OutputFormat {
		case "parquet":
			parquetOutput, err := NewParquetOutput(s.Config)
			if err != nil {
				return nil, fmt.Errorf("failed to create Parquet output: %w", err)
			}
			outputs = append(outputs, parquetOutput)
		case "json":
			outputs = append(outputs, NewJSONOutput(s.Config.OutputPath, s.Config.OutputFolder))
		case "csv":
			outputs = append(outputs, NewCSVOutput(s.Config.OutputPath, s.Config.OutputFolder))
		case "postgres":
			pg, err := output.NewPostgresOutput(ctx, s.Config.DatabaseURL)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, pg)
		default:
			outputs = append(outputs, NewConsoleOutput(os.Stdout))
		}
	}

	if s.Config.WebSocketAddr != "" {
		ws := NewWebSocketOutput(s.Config.WebSocketAddr)
		ws.Start()
		outputs = append(outputs, ws)
	}

	if len(outputs) == 1 {
		return outputs[0], nil
	}
	return outputs, nil
}

// Run plays the session until Duration has elapsed on the session clock or
// ctx is cancelled. Without Realtime the clock advances one frame per
// iteration as fast as the machine allows.
func (s *Simulator) Run(ctx context.Context) error {
	if s.output == nil {
		dest, err := s.determineOutputDestination(ctx)
		if err != nil {
			return err
		}
		s.output = dest
	}
	defer func() {
		if err := s.output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	if err := s.initializeData(ctx); err != nil {
		return err
	}
	s.Session.Bus.SubscribeAll(s.writeEvent)

	frame := time.Second / time.Duration(s.Config.FrameRate)
	if s.Config.Realtime {
		s.CurrentTime = time.Now().UTC()
	}
	end := s.CurrentTime.Add(s.Config.Duration)
	log.Printf("Simulation starts at %s for %s at %d fps", s.CurrentTime.Format(time.RFC3339), s.Config.Duration, s.Config.FrameRate)

	s.Session.Start(s.CurrentTime)
	var err error
	if s.Config.Realtime {
		err = s.runRealtime(ctx, frame, end)
	} else {
		err = s.runSimulated(ctx, frame, end)
	}
	s.Session.Stop(s.CurrentTime)

	g := s.Session.Game
	log.Printf("Simulation completed: %d delivered, %d failed, best streak %d, earned $%.2f, %d events",
		g.TotalDeliveries, g.FailedDeliveries, g.BestStreak, g.Earnings, s.eventsCount)
	return err
}

func (s *Simulator) runSimulated(ctx context.Context, frame time.Duration, end time.Time) error {
	total := int64(end.Sub(s.CurrentTime) / frame)
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(s.Progress),
		progressbar.OptionSetDescription("flying"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	defer bar.Finish()

	for s.CurrentTime.Before(end) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.CurrentTime = s.CurrentTime.Add(frame)
		s.step(s.CurrentTime)
		_ = bar.Add(1)
	}
	return nil
}

func (s *Simulator) runRealtime(ctx context.Context, frame time.Duration, end time.Time) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for s.CurrentTime.Before(end) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.CurrentTime = now.UTC()
			s.step(s.CurrentTime)
		}
	}
	return nil
}

// step is one frame: take a queued order when idle, then fly.
func (s *Simulator) step(now time.Time) {
	if s.Session.Game.CurrentOrder == nil && len(s.Session.Game.OrderQueue) > 0 {
		if _, err := s.Session.AcceptNext(now); err != nil {
			log.Printf("Error accepting order: %v", err)
		}
	}
	controls := s.Autopilot.Controls(s.Session.Snapshot(now))
	s.Session.Tick(now, controls)
}

func (s *Simulator) writeEvent(event models.Event) {
	eventMsg, err := serializeEvent(s.Session.Game.ID, event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := s.output.WriteMessage(eventMsg.Topic, eventMsg.Message); err != nil {
		log.Printf("Failed to write message: %v", err)
		return
	}
	s.eventsCount++
}
