package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults point at the Halifax Transit open-data feeds.
const (
	defaultStaticZipPath       = "data/Static_data.zip"
	defaultAlertsURL           = "http://gtfs.halifax.ca/realtime/Alert/Alerts.pb"
	defaultTripUpdatesURL      = "http://gtfs.halifax.ca/realtime/TripUpdate/TripUpdates.pb"
	defaultVehiclePositionsURL = "http://gtfs.halifax.ca/realtime/Vehicle/VehiclePositions.pb"
	defaultTimeoutMS           = 15000
)

// Load reads the YAML config file, applies environment overrides and
// defaults, and validates the result. A missing file is not an error; the
// defaults alone are a working Halifax deployment.
func Load(path string) (*AppConfig, error) {
	// Pull a local .env into the environment first so the overrides below
	// see it. Missing .env is fine.
	_ = godotenv.Load()

	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("TRANSIT_STATIC_ZIP"); v != "" {
		cfg.GTFS.StaticZipPath = v
	}
	if v := os.Getenv("TRANSIT_ALERTS_URL"); v != "" {
		cfg.GTFSRT.AlertsURL = v
	}
	if v := os.Getenv("TRANSIT_TRIP_UPDATES_URL"); v != "" {
		cfg.GTFSRT.TripUpdatesURL = v
	}
	if v := os.Getenv("TRANSIT_VEHICLE_POSITIONS_URL"); v != "" {
		cfg.GTFSRT.VehiclePositionsURL = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.GTFS.StaticZipPath == "" {
		cfg.GTFS.StaticZipPath = defaultStaticZipPath
	}
	if cfg.GTFSRT.AlertsURL == "" {
		cfg.GTFSRT.AlertsURL = defaultAlertsURL
	}
	if cfg.GTFSRT.TripUpdatesURL == "" {
		cfg.GTFSRT.TripUpdatesURL = defaultTripUpdatesURL
	}
	if cfg.GTFSRT.VehiclePositionsURL == "" {
		cfg.GTFSRT.VehiclePositionsURL = defaultVehiclePositionsURL
	}
	if cfg.GTFSRT.TimeoutMS == 0 {
		cfg.GTFSRT.TimeoutMS = defaultTimeoutMS
	}
}
