package factories

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/menu"
	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/lucsky/cuid"
)

var ErrInvalidRestaurant = errors.New("restaurant has no usable location")

type OrderFactory struct {
	Config     models.OrderConfig
	Catalog    *menu.Catalog
	Projection geo.Projection
	Rng        Rand
	NewID      func() string
}

func NewOrderFactory(cfg models.OrderConfig, catalog *menu.Catalog, projection geo.Projection, rng Rand) *OrderFactory {
	if catalog == nil {
		catalog = menu.Default()
	}
	return &OrderFactory{
		Config:     cfg,
		Catalog:    catalog,
		Projection: projection,
		Rng:        rng,
		NewID:      cuid.New,
	}
}

// GenerateOrder builds a priced, available order for restaurant. Draws from
// the random source happen in a fixed sequence (customer, drop-off, items,
// tip) so a seeded source reproduces the same order.
func (of *OrderFactory) GenerateOrder(restaurant *models.Restaurant, now time.Time) (*models.Order, error) {
	if !restaurant.Valid() {
		return nil, fmt.Errorf("generating order for %q: %w", restaurant.Name, ErrInvalidRestaurant)
	}
	cfg := of.Config
	m := of.Catalog.Resolve(restaurant)

	customer := pick(of.Rng, customerNames)
	drop := of.deliveryLocation(restaurant.Location)
	items := of.selectItems(m.Items)

	var subtotal, prep float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		prep = math.Max(prep, it.PrepMinutes)
	}

	distance := roundTo(of.Projection.Distance(restaurant.Location, drop.Location), 100)
	basePay := cfg.BaseFee + cfg.SubtotalRate*subtotal
	distanceBonus := cfg.DistanceRate * distance

	var tip float64
	if of.Rng.Float64() < cfg.BonusChance {
		tip = roundTo(cfg.MinTip+of.Rng.Float64()*(cfg.MaxTip-cfg.MinTip), 100)
	}

	return &models.Order{
		ID:               of.NewID(),
		CustomerName:     customer,
		Restaurant:       *restaurant,
		DeliveryLocation: drop,
		MenuKey:          m.Key,
		Items:            items,
		Subtotal:         subtotal,
		BasePay:          basePay,
		DistanceBonus:    distanceBonus,
		EstimatedPay:     basePay + distanceBonus,
		Bonus:            tip,
		Distance:         distance,
		PrepMinutes:      prep,
		TimeLimitSeconds: TimeLimitSeconds(cfg, distance),
		Status:           models.OrderStatusAvailable,
		CreatedAt:        now,
	}, nil
}

// TimeLimitSeconds grants a base allowance plus one second per
// MetersPerSecond metres of route.
func TimeLimitSeconds(cfg models.OrderConfig, distance float64) int {
	return cfg.BaseTimeLimit + int(math.Ceil(distance/cfg.MetersPerSecond))
}

func (of *OrderFactory) deliveryLocation(from models.Location) models.DeliveryLocation {
	cfg := of.Config
	bearing := of.Rng.Float64() * 2 * math.Pi
	meters := cfg.MinDeliveryDistance + of.Rng.Float64()*(cfg.MaxDeliveryDistance-cfg.MinDeliveryDistance)
	return models.DeliveryLocation{
		Location: of.Projection.Offset(from, bearing, meters),
		Address:  streetAddress(of.Rng),
	}
}

// selectItems picks up to MaxItems distinct items by name. A slot that keeps
// drawing duplicates is dropped after MaxResampleAttempts tries.
func (of *OrderFactory) selectItems(menuItems []models.MenuItem) []models.OrderLineItem {
	cfg := of.Config
	if len(menuItems) == 0 {
		return nil
	}
	count := 1 + of.Rng.Intn(cfg.MaxItems)
	attempts := cfg.MaxResampleAttempts
	if attempts < 1 {
		attempts = 1
	}

	seen := make(map[string]bool, count)
	lines := make([]models.OrderLineItem, 0, count)
	for slot := 0; slot < count; slot++ {
		for try := 0; try < attempts; try++ {
			it := menuItems[of.Rng.Intn(len(menuItems))]
			if seen[it.Name] {
				continue
			}
			seen[it.Name] = true
			qty := 1
			if of.Rng.Float64() < cfg.DoubleQuantityChance {
				qty = 2
			}
			lines = append(lines, models.OrderLineItem{
				Name:        it.Name,
				Price:       it.Price,
				Quantity:    qty,
				PrepMinutes: it.PrepMinutes,
			})
			break
		}
	}
	return lines
}

func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
