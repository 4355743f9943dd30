package models

// DeliveryLocation is the generated drop-off point attached to an order.
type DeliveryLocation struct {
	Location Location `json:"location"`
	Address  string   `json:"address"`
}
