package models

// Restaurant is a pickup point supplied by discovery. It is never mutated
// by the game.
type Restaurant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Cuisine  string   `json:"cuisine"`
	Amenity  string   `json:"amenity"` // restaurant, cafe, fast_food, bakery
	Brand    string   `json:"brand,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
}

func (r *Restaurant) Valid() bool {
	return r != nil && r.Name != "" && r.Location.Valid()
}

// Key identifies the restaurant for queue de-duplication.
func (r *Restaurant) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}
