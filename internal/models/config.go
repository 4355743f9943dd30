package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// MaxDeliveryRange caps how far a drop-off may be generated from its
// restaurant.
const MaxDeliveryRange = 1600.0

type FlightConfig struct {
	Acceleration    float64 `mapstructure:"acceleration"`     // m/s^2
	TurnRate        float64 `mapstructure:"turn_rate"`        // deg/s
	VerticalSpeed   float64 `mapstructure:"vertical_speed"`   // m/s^2
	Drag            float64 `mapstructure:"drag"`             // per tick
	TurboDrag       float64 `mapstructure:"turbo_drag"`       // per tick
	TurboMultiplier float64 `mapstructure:"turbo_multiplier"` // accel and top speed
	MaxSpeed        float64 `mapstructure:"max_speed"`        // m/s, horizontal
	MinClearance    float64 `mapstructure:"min_clearance"`    // m above ground
	MaxCeiling      float64 `mapstructure:"max_ceiling"`      // m above ground
	MaxDeltaTime    float64 `mapstructure:"max_delta_time"`   // s
}

type DeliveryConfig struct {
	PickupRadius       float64 `mapstructure:"pickup_radius"`
	DeliveryRadius     float64 `mapstructure:"delivery_radius"`
	MaxTriggerAltitude float64 `mapstructure:"max_trigger_altitude"`
}

type OrderConfig struct {
	MinDeliveryDistance  float64 `mapstructure:"min_delivery_distance"`
	MaxDeliveryDistance  float64 `mapstructure:"max_delivery_distance"`
	BaseFee              float64 `mapstructure:"base_fee"`
	SubtotalRate         float64 `mapstructure:"subtotal_rate"`
	DistanceRate         float64 `mapstructure:"distance_rate"`
	BaseTimeLimit        int     `mapstructure:"base_time_limit"`
	MetersPerSecond      float64 `mapstructure:"meters_per_second"`
	BonusChance          float64 `mapstructure:"bonus_chance"`
	MinTip               float64 `mapstructure:"min_tip"`
	MaxTip               float64 `mapstructure:"max_tip"`
	DoubleQuantityChance float64 `mapstructure:"double_quantity_chance"`
	MaxItems             int     `mapstructure:"max_items"`
	MaxResampleAttempts  int     `mapstructure:"max_resample_attempts"`
}

type SessionConfig struct {
	InitialOrders     int           `mapstructure:"initial_orders"`
	MaxQueue          int           `mapstructure:"max_queue"`
	ReplenishInterval time.Duration `mapstructure:"replenish_interval"`
	RefillThreshold   int           `mapstructure:"refill_threshold"`
	RefillCount       int           `mapstructure:"refill_count"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed            int64         `mapstructure:"seed"`
	SpawnLat        float64       `mapstructure:"spawn_latitude"`
	SpawnLon        float64       `mapstructure:"spawn_longitude"`
	SpawnAltitude   float64       `mapstructure:"spawn_altitude"` // m above ground
	Duration        time.Duration `mapstructure:"duration"`
	FrameRate       int           `mapstructure:"frame_rate"`
	Realtime        bool          `mapstructure:"realtime"`
	Terrain         string        `mapstructure:"terrain"` // flat or rolling
	RestaurantCount int           `mapstructure:"restaurant_count"`
	SearchRadius    float64       `mapstructure:"search_radius"`
	MaxRestaurants  int           `mapstructure:"max_restaurants"`
	DatabaseURL     string        `mapstructure:"database_url"`
	MenuFile        string        `mapstructure:"menu_file"`

	Flight   FlightConfig   `mapstructure:"flight"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Orders   OrderConfig    `mapstructure:"orders"`
	Session  SessionConfig  `mapstructure:"session"`

	OutputFormat      string             `mapstructure:"output_format"` // console, json, csv, parquet, postgres
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or cloud
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	KafkaEnabled      bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList   string             `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix  string             `mapstructure:"kafka_topic_prefix"`
	WebSocketAddr     string             `mapstructure:"websocket_addr"`
}

var defaults = map[string]interface{}{
	"seed":             42,
	"spawn_latitude":   40.7128,
	"spawn_longitude":  -74.0060,
	"spawn_altitude":   50.0,
	"duration":         "10m",
	"frame_rate":       30,
	"realtime":         false,
	"terrain":          "flat",
	"restaurant_count": 20,
	"search_radius":    1500.0,
	"max_restaurants":  100,

	"flight.acceleration":     50.0,
	"flight.turn_rate":        90.0,
	"flight.vertical_speed":   20.0,
	"flight.drag":             0.95,
	"flight.turbo_drag":       0.91,
	"flight.turbo_multiplier": 2.5,
	"flight.max_speed":        80.0,
	"flight.min_clearance":    2.0,
	"flight.max_ceiling":      500.0,
	"flight.max_delta_time":   0.1,

	"delivery.pickup_radius":        30.0,
	"delivery.delivery_radius":      25.0,
	"delivery.max_trigger_altitude": 10.0,

	"orders.min_delivery_distance":  150.0,
	"orders.max_delivery_distance":  600.0,
	"orders.base_fee":               3.50,
	"orders.subtotal_rate":          0.15,
	"orders.distance_rate":          0.02,
	"orders.base_time_limit":        180,
	"orders.meters_per_second":      5.0,
	"orders.bonus_chance":           0.3,
	"orders.min_tip":                1.0,
	"orders.max_tip":                4.0,
	"orders.double_quantity_chance": 0.2,
	"orders.max_items":              3,
	"orders.max_resample_attempts":  10,

	"session.initial_orders":     3,
	"session.max_queue":          5,
	"session.replenish_interval": "15s",
	"session.refill_threshold":   3,
	"session.refill_count":       2,

	"output_format":        "console",
	"output_folder":        "events",
	"output_destination":   "local",
	"kafka_broker_list":    "localhost:9092",
	"cloud_storage.region": "us-east-1",
}

// LoadConfig initializes and reads the configuration using Viper. A missing
// default config file is not an error; an explicit one must be readable.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.SetEnvPrefix("DRONEDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// DefaultConfig returns the built-in tuning without touching viper.
func DefaultConfig() *Config {
	return &Config{
		Seed:            42,
		SpawnLat:        40.7128,
		SpawnLon:        -74.0060,
		SpawnAltitude:   50,
		Duration:        10 * time.Minute,
		FrameRate:       30,
		Terrain:         "flat",
		RestaurantCount: 20,
		SearchRadius:    1500,
		MaxRestaurants:  100,
		Flight: FlightConfig{
			Acceleration:    50,
			TurnRate:        90,
			VerticalSpeed:   20,
			Drag:            0.95,
			TurboDrag:       0.91,
			TurboMultiplier: 2.5,
			MaxSpeed:        80,
			MinClearance:    2,
			MaxCeiling:      500,
			MaxDeltaTime:    0.1,
		},
		Delivery: DeliveryConfig{
			PickupRadius:       30,
			DeliveryRadius:     25,
			MaxTriggerAltitude: 10,
		},
		Orders: OrderConfig{
			MinDeliveryDistance:  150,
			MaxDeliveryDistance:  600,
			BaseFee:              3.50,
			SubtotalRate:         0.15,
			DistanceRate:         0.02,
			BaseTimeLimit:        180,
			MetersPerSecond:      5,
			BonusChance:          0.3,
			MinTip:               1,
			MaxTip:               4,
			DoubleQuantityChance: 0.2,
			MaxItems:             3,
			MaxResampleAttempts:  10,
		},
		Session: SessionConfig{
			InitialOrders:     3,
			MaxQueue:          5,
			ReplenishInterval: 15 * time.Second,
			RefillThreshold:   3,
			RefillCount:       2,
		},
		OutputFormat:      "console",
		OutputFolder:      "events",
		OutputDestination: "local",
		KafkaBrokerList:   "localhost:9092",
		CloudStorage:      CloudStorageConfig{Region: "us-east-1"},
	}
}

func (cfg *Config) Validate() error {
	var errs []error
	if !(Location{Lat: cfg.SpawnLat, Lon: cfg.SpawnLon}).Valid() {
		errs = append(errs, fmt.Errorf("spawn %.6f,%.6f is not a usable coordinate", cfg.SpawnLat, cfg.SpawnLon))
	}
	if cfg.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", cfg.FrameRate))
	}
	if cfg.Delivery.PickupRadius <= 0 || cfg.Delivery.DeliveryRadius <= 0 || cfg.Delivery.MaxTriggerAltitude <= 0 {
		errs = append(errs, errors.New("delivery radii and trigger altitude must be positive"))
	}
	o := cfg.Orders
	if o.MinDeliveryDistance < 0 || o.MaxDeliveryDistance < o.MinDeliveryDistance || o.MaxDeliveryDistance > MaxDeliveryRange {
		errs = append(errs, fmt.Errorf("delivery distance range [%.0f, %.0f] must lie within [0, %.0f]",
			o.MinDeliveryDistance, o.MaxDeliveryDistance, MaxDeliveryRange))
	}
	if o.MetersPerSecond <= 0 {
		errs = append(errs, errors.New("orders.meters_per_second must be positive"))
	}
	if o.MaxItems < 1 {
		errs = append(errs, errors.New("orders.max_items must be at least 1"))
	}
	if o.MaxTip < o.MinTip {
		errs = append(errs, errors.New("orders.max_tip must not be below orders.min_tip"))
	}
	f := cfg.Flight
	if f.MaxCeiling <= f.MinClearance {
		errs = append(errs, errors.New("flight.max_ceiling must exceed flight.min_clearance"))
	}
	if f.Drag <= 0 || f.Drag > 1 || f.TurboDrag <= 0 || f.TurboDrag > 1 {
		errs = append(errs, errors.New("flight drag coefficients must lie in (0, 1]"))
	}
	s := cfg.Session
	if s.MaxQueue < 1 || s.InitialOrders > s.MaxQueue {
		errs = append(errs, fmt.Errorf("session.initial_orders (%d) must not exceed session.max_queue (%d)", s.InitialOrders, s.MaxQueue))
	}
	if s.ReplenishInterval <= 0 {
		errs = append(errs, errors.New("session.replenish_interval must be positive"))
	}
	switch cfg.OutputFormat {
	case "console", "json", "csv", "parquet":
	case "postgres":
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("output_format postgres needs database_url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported output_format %q", cfg.OutputFormat))
	}
	if cfg.OutputDestination == "cloud" && cfg.CloudStorage.BucketName == "" {
		errs = append(errs, errors.New("output_destination cloud needs cloud_storage.bucket_name"))
	}
	return errors.Join(errs...)
}
