package factories

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/menu"
	"github.com/chrisdamba/dronedash/internal/models"
)

// scriptedRand replays fixed draws and returns zero once a script runs out.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

var nyc = models.Location{Lat: 40.7128, Lon: -74.0060}

func testOrderConfig() models.OrderConfig {
	return models.DefaultConfig().Orders
}

func TestGenerateOrderTimeLimitForThreeHundredMetres(t *testing.T) {
	cfg := testOrderConfig()
	cfg.MinDeliveryDistance = 200
	cfg.MaxDeliveryDistance = 400

	rng := &scriptedRand{
		// bearing, distance, quantity, tip roll
		floats: []float64{0, 0.5, 0.9, 0.9},
		// customer, house, street, suffix, item count, item pick
		ints: []int{0, 0, 0, 0, 0, 0},
	}
	of := NewOrderFactory(cfg, menu.Default(), geo.NewProjection(nyc), rng)
	restaurant := &models.Restaurant{Name: "Joe's Pizza", Location: nyc}

	order, err := of.GenerateOrder(restaurant, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("GenerateOrder: %v", err)
	}
	if order.Distance != 300 {
		t.Fatalf("distance got=%f want=300", order.Distance)
	}
	if order.TimeLimitSeconds != 240 {
		t.Fatalf("time limit got=%d want=240", order.TimeLimitSeconds)
	}
	if order.CustomerName != "James" || order.DeliveryLocation.Address != "100 Oak St" {
		t.Fatalf("unexpected customer/address %q / %q", order.CustomerName, order.DeliveryLocation.Address)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Pepperoni Pizza (Large)" || order.Items[0].Quantity != 1 {
		t.Fatalf("unexpected items %+v", order.Items)
	}
	wantPay := 3.50 + 0.15*18.99 + 0.02*300
	if math.Abs(order.EstimatedPay-wantPay) > 1e-9 {
		t.Fatalf("estimated pay got=%f want=%f", order.EstimatedPay, wantPay)
	}
	if order.Bonus != 0 {
		t.Fatalf("tip roll 0.9 should not tip, got %f", order.Bonus)
	}
	if order.Status != models.OrderStatusAvailable {
		t.Fatalf("status got=%s want=available", order.Status)
	}
}

func TestGeneratedOrdersHoldPricingInvariants(t *testing.T) {
	cfg := testOrderConfig()
	of := NewOrderFactory(cfg, menu.Default(), geo.NewProjection(nyc), rand.New(rand.NewSource(7)))
	restaurants := []*models.Restaurant{
		{Name: "Joe's Pizza", Location: nyc},
		{Name: "Dragon Palace", Cuisine: "chinese", Location: models.Location{Lat: 40.715, Lon: -74.01}},
		{Name: "Starbucks", Location: models.Location{Lat: 40.71, Lon: -74.0}},
		{Name: "Nameless", Location: models.Location{Lat: 40.72, Lon: -74.003}},
	}

	ids := make(map[string]bool)
	tipped := 0
	for i := 0; i < 400; i++ {
		r := restaurants[i%len(restaurants)]
		o, err := of.GenerateOrder(r, time.Now())
		if err != nil {
			t.Fatalf("GenerateOrder: %v", err)
		}
		if ids[o.ID] {
			t.Fatalf("duplicate order id %s", o.ID)
		}
		ids[o.ID] = true

		if n := len(o.Items); n < 1 || n > cfg.MaxItems {
			t.Fatalf("item count %d out of range", n)
		}
		var subtotal float64
		names := make(map[string]bool)
		for _, it := range o.Items {
			if names[it.Name] {
				t.Fatalf("duplicate item %q in order", it.Name)
			}
			names[it.Name] = true
			if it.Quantity != 1 && it.Quantity != 2 {
				t.Fatalf("quantity %d not in {1,2}", it.Quantity)
			}
			subtotal += it.Price * float64(it.Quantity)
		}
		if math.Abs(subtotal-o.Subtotal) > 1e-9 {
			t.Fatalf("subtotal got=%f want=%f", o.Subtotal, subtotal)
		}
		wantPay := 3.50 + 0.15*o.Subtotal + 0.02*o.Distance
		if math.Abs(o.EstimatedPay-wantPay) > 1e-9 {
			t.Fatalf("estimated pay got=%f want=%f", o.EstimatedPay, wantPay)
		}
		if o.Distance < cfg.MinDeliveryDistance-0.01 || o.Distance > cfg.MaxDeliveryDistance+0.01 {
			t.Fatalf("distance %f outside configured range", o.Distance)
		}
		if o.TimeLimitSeconds != 180+int(math.Ceil(o.Distance/5)) {
			t.Fatalf("time limit got=%d for distance %f", o.TimeLimitSeconds, o.Distance)
		}
		if o.Bonus != 0 {
			tipped++
			if o.Bonus < 1 || o.Bonus > 4 {
				t.Fatalf("tip %f outside [1,4]", o.Bonus)
			}
		}
	}
	// 30% nominal; a seeded run of 400 lands well inside this band
	if tipped < 60 || tipped > 180 {
		t.Fatalf("tip frequency looks wrong: %d/400", tipped)
	}
}

func TestSelectItemsGivesUpOnDuplicates(t *testing.T) {
	catalog := &menu.Catalog{Categories: map[models.MenuCategory][]models.MenuItem{
		models.MenuDefault: {
			{Name: "A", Price: 5, PrepMinutes: 4},
			{Name: "B", Price: 7, PrepMinutes: 9},
		},
	}}
	rng := &scriptedRand{
		floats: []float64{0, 0, 0.5, 0.9},
		// customer, house, street, suffix, count=3, then item picks all 0
		ints: []int{0, 0, 0, 0, 2},
	}
	of := NewOrderFactory(testOrderConfig(), catalog, geo.NewProjection(nyc), rng)
	o, err := of.GenerateOrder(&models.Restaurant{Name: "Somewhere", Location: nyc}, time.Now())
	if err != nil {
		t.Fatalf("GenerateOrder: %v", err)
	}
	if len(o.Items) != 1 || o.Items[0].Name != "A" {
		t.Fatalf("expected a single A after exhausting resamples, got %+v", o.Items)
	}
	if o.Subtotal != 5 || o.PrepMinutes != 4 {
		t.Fatalf("subtotal=%f prep=%f", o.Subtotal, o.PrepMinutes)
	}
}

func TestGenerateOrderRejectsRestaurantWithoutLocation(t *testing.T) {
	of := NewOrderFactory(testOrderConfig(), nil, geo.NewProjection(nyc), rand.New(rand.NewSource(1)))
	for _, r := range []*models.Restaurant{
		{Name: "Ghost Kitchen"},
		{Name: "Bad Data", Location: models.Location{Lat: math.NaN(), Lon: -74}},
	} {
		if _, err := of.GenerateOrder(r, time.Now()); !errors.Is(err, ErrInvalidRestaurant) {
			t.Fatalf("%s: got err=%v want ErrInvalidRestaurant", r.Name, err)
		}
	}
}

func TestCreateRestaurantsRing(t *testing.T) {
	proj := geo.NewProjection(nyc)
	a := NewRestaurantFactory(99, proj).CreateRestaurants(nyc, 20)
	b := NewRestaurantFactory(99, proj).CreateRestaurants(nyc, 20)
	if len(a) != 20 {
		t.Fatalf("got %d restaurants want 20", len(a))
	}
	catalog := menu.Default()
	for i, r := range a {
		if !r.Valid() {
			t.Fatalf("restaurant %d invalid: %+v", i, r)
		}
		d := proj.Distance(nyc, r.Location)
		if d < 200-1e-6 || d > 1000+1e-6 {
			t.Fatalf("restaurant %q at %f m, want 200-1000", r.Name, d)
		}
		if r.Name != b[i].Name || r.Location != b[i].Location {
			t.Fatalf("same seed produced %q/%v and %q/%v", r.Name, r.Location, b[i].Name, b[i].Location)
		}
		if catalog.Classify(&r) == models.MenuDefault {
			t.Fatalf("fallback restaurant %q should map to a cuisine menu", r.Name)
		}
	}
}
