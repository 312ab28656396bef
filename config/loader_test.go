package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"transit-assistant/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	is := is.New(t)
	path := writeConfig(t, `
gtfs:
  staticZipPath: /data/metro.zip
gtfsrt:
  alertsURL: https://example.org/alerts.pb
  tripUpdatesURL: https://example.org/updates.pb
  vehiclePositionsURL: https://example.org/vehicles.pb
  timeoutMS: 5000
`)

	cfg, err := config.Load(path)
	is.NoErr(err)
	is.Equal(cfg.GTFS.StaticZipPath, "/data/metro.zip")
	is.Equal(cfg.GTFSRT.AlertsURL, "https://example.org/alerts.pb")
	is.Equal(cfg.GTFSRT.TimeoutMS, 5000)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	is.NoErr(err)
	is.Equal(cfg.GTFS.StaticZipPath, "data/Static_data.zip")
	is.Equal(cfg.GTFSRT.AlertsURL, "http://gtfs.halifax.ca/realtime/Alert/Alerts.pb")
	is.Equal(cfg.GTFSRT.TripUpdatesURL, "http://gtfs.halifax.ca/realtime/TripUpdate/TripUpdates.pb")
	is.Equal(cfg.GTFSRT.VehiclePositionsURL, "http://gtfs.halifax.ca/realtime/Vehicle/VehiclePositions.pb")
	is.Equal(cfg.GTFSRT.TimeoutMS, 15000)
}

func TestLoad_EnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("TRANSIT_ALERTS_URL", "https://other.example/alerts.pb")
	t.Setenv("TRANSIT_STATIC_ZIP", "/tmp/other.zip")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	is.NoErr(err)
	is.Equal(cfg.GTFSRT.AlertsURL, "https://other.example/alerts.pb")
	is.Equal(cfg.GTFS.StaticZipPath, "/tmp/other.zip")
	// Untouched values still default.
	is.Equal(cfg.GTFSRT.TripUpdatesURL, "http://gtfs.halifax.ca/realtime/TripUpdate/TripUpdates.pb")
}

func TestLoad_RejectsMalformedURL(t *testing.T) {
	is := is.New(t)
	path := writeConfig(t, `
gtfsrt:
  alertsURL: "not a url"
`)

	_, err := config.Load(path)
	is.True(err != nil)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	is := is.New(t)
	path := writeConfig(t, "gtfs: [unclosed")

	_, err := config.Load(path)
	is.True(err != nil)
}
