package factories

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type kitchen struct {
	Cuisine string
	Amenity string
	Suffix  string
}

// Names keep a cuisine keyword so the menu classifier resolves them.
var kitchens = []kitchen{
	{"pizza", "restaurant", "Pizza"},
	{"chinese", "restaurant", "Wok"},
	{"mexican", "fast_food", "Tacos"},
	{"burger", "fast_food", "Burger Barn"},
	{"japanese", "restaurant", "Sushi House"},
	{"coffee_shop", "cafe", "Cafe"},
	{"thai", "restaurant", "Thai Garden"},
	{"bbq", "restaurant", "BBQ Pit"},
	{"indian", "restaurant", "Curry House"},
	{"seafood", "restaurant", "Fish Shack"},
}

// RestaurantFactory fills the map with made-up restaurants when discovery
// comes back empty.
type RestaurantFactory struct {
	fake       faker.Faker
	rng        *rand.Rand
	projection geo.Projection
	MinRadius  float64
	MaxRadius  float64
}

func NewRestaurantFactory(seed int64, projection geo.Projection) *RestaurantFactory {
	return &RestaurantFactory{
		fake:       faker.NewWithSeed(rand.NewSource(seed)),
		rng:        rand.New(rand.NewSource(seed + 1)),
		projection: projection,
		MinRadius:  200,
		MaxRadius:  1000,
	}
}

// CreateRestaurants spreads count restaurants evenly by bearing around
// center at a random distance between MinRadius and MaxRadius.
func (rf *RestaurantFactory) CreateRestaurants(center models.Location, count int) []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		bearing := float64(i) / float64(count) * 2 * math.Pi
		restaurants = append(restaurants, rf.CreateRestaurant(center, bearing, i))
	}
	return restaurants
}

func (rf *RestaurantFactory) CreateRestaurant(center models.Location, bearing float64, i int) models.Restaurant {
	k := kitchens[i%len(kitchens)]
	meters := rf.MinRadius + rf.rng.Float64()*(rf.MaxRadius-rf.MinRadius)
	return models.Restaurant{
		ID:       cuid.New(),
		Name:     fmt.Sprintf("%s's %s", rf.fake.Person().LastName(), k.Suffix),
		Location: rf.projection.Offset(center, bearing, meters),
		Cuisine:  k.Cuisine,
		Amenity:  k.Amenity,
		Rating:   rf.fake.Float64(1, 3, 5),
		Phone:    rf.fake.Phone().Number(),
		Address:  rf.fake.Address().StreetAddress(),
	}
}
