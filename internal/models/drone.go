package models

// DroneState is the pose and motion of the player's drone. Angles are in
// degrees, heading is a compass bearing (0 = north, clockwise).
type DroneState struct {
	Lon           float64 `json:"lon"`
	Lat           float64 `json:"lat"`
	Altitude      float64 `json:"altitude"`
	Heading       float64 `json:"heading"`
	Pitch         float64 `json:"pitch"`
	Roll          float64 `json:"roll"`
	VelocityEast  float64 `json:"velocity_east"`
	VelocityNorth float64 `json:"velocity_north"`
	VelocityUp    float64 `json:"velocity_up"`
	Speed         float64 `json:"speed"`
}

func (d DroneState) Location() Location {
	return Location{Lat: d.Lat, Lon: d.Lon}
}

// Controls is the input sampled once per tick.
type Controls struct {
	Forward     bool `json:"forward"`
	Back        bool `json:"back"`
	YawLeft     bool `json:"yaw_left"`
	YawRight    bool `json:"yaw_right"`
	Ascend      bool `json:"ascend"`
	Descend     bool `json:"descend"`
	StrafeLeft  bool `json:"strafe_left"`
	StrafeRight bool `json:"strafe_right"`
	Turbo       bool `json:"turbo"`
}
