package config

// GTFSConfig locates the static schedule archive.
type GTFSConfig struct {
	StaticZipPath string `yaml:"staticZipPath" validate:"required"`
}

// GTFSRTConfig holds the realtime endpoint URLs for one agency. Swapping
// these URLs is the documented way to retarget the assistant to a different
// transit authority.
type GTFSRTConfig struct {
	AlertsURL           string `yaml:"alertsURL" validate:"omitempty,url"`
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure. It is resolved once at
// startup and never mutated afterwards.
type AppConfig struct {
	GTFS   GTFSConfig   `yaml:"gtfs"`
	GTFSRT GTFSRTConfig `yaml:"gtfsrt"`
}
