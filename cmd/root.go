package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisdamba/dronedash/internal/models"
	"github.com/chrisdamba/dronedash/internal/simulator"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dronedash",
	Short: "Flies a headless drone-delivery session and streams its events",
	Long: `dronedash runs the drone-delivery game core without a renderer: an autopilot
accepts restaurant orders, flies pickups and drop-offs, and every lifecycle
event (orders, deliveries, score) is written to the console, files, Kafka,
Postgres or a websocket feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// flagKeys maps CLI flags onto nested config keys.
var flagKeys = map[string]string{
	"seed":               "seed",
	"duration":           "duration",
	"frame-rate":         "frame_rate",
	"realtime":           "realtime",
	"terrain":            "terrain",
	"spawn-lat":          "spawn_latitude",
	"spawn-lon":          "spawn_longitude",
	"restaurants":        "restaurant_count",
	"database-url":       "database_url",
	"menu-file":          "menu_file",
	"output-format":      "output_format",
	"output-path":        "output_path",
	"output-folder":      "output_folder",
	"output-destination": "output_destination",
	"kafka-enabled":      "kafka_enabled",
	"kafka-broker-list":  "kafka_broker_list",
	"kafka-topic-prefix": "kafka_topic_prefix",
	"websocket-addr":     "websocket_addr",
	"max-queue":          "session.max_queue",
	"pickup-radius":      "delivery.pickup_radius",
	"delivery-radius":    "delivery.delivery_radius",
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for orders and fallback restaurants")
	rootCmd.Flags().Duration("duration", 0, "Session length on the simulated clock")
	rootCmd.Flags().Int("frame-rate", 30, "Ticks per simulated second")
	rootCmd.Flags().Bool("realtime", false, "Tick on the wall clock instead of as fast as possible")
	rootCmd.Flags().String("terrain", "flat", "Ground model: flat or rolling")
	rootCmd.Flags().Float64("spawn-lat", 40.7128, "Drone spawn latitude")
	rootCmd.Flags().Float64("spawn-lon", -74.0060, "Drone spawn longitude")
	rootCmd.Flags().Int("restaurants", 20, "Fallback restaurants to generate when discovery finds none")
	rootCmd.Flags().String("database-url", "", "PostGIS connection string for restaurant discovery")
	rootCmd.Flags().String("menu-file", "", "YAML menu catalog (built-in catalog if empty)")
	rootCmd.Flags().String("output-format", "console", "console, json, csv, parquet or postgres")
	rootCmd.Flags().String("output-path", "", "Base directory for file outputs")
	rootCmd.Flags().String("output-folder", "events", "Folder under output-path for event files")
	rootCmd.Flags().String("output-destination", "local", "local or cloud (parquet only)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic-prefix", "", "Prefix for Kafka topic names")
	rootCmd.Flags().String("websocket-addr", "", "Serve a live event feed on this address, e.g. :8080")
	rootCmd.Flags().Int("max-queue", 5, "Maximum pending orders")
	rootCmd.Flags().Float64("pickup-radius", 30, "Pickup trigger radius in metres")
	rootCmd.Flags().Float64("delivery-radius", 25, "Drop-off trigger radius in metres")

	for flag, key := range flagKeys {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)))
	}
}

// initConfig loads .env so DRONEDASH_* variables reach viper.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error loading .env:", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
