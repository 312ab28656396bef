package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"transit-assistant/config"
	"transit-assistant/gtfs"
	"transit-assistant/gtfsrt"
	"transit-assistant/internal/logging"
	"transit-assistant/session"
)

const welcome = `
Welcome to the Transit Assistant!
This tool allows you to:
- View current service alerts affecting your agency
- Track buses on selected routes
- Get upcoming arrival times for stops
- Manage your list of routes of interest
`

const mainMenu = `
=== Transit Assistant ===
1. View Service Alerts
2. Track a Bus
3. Get Route Updates (Arrivals)
4. Manage Tracked Routes
5. Agency Info
H. Help
Q. Quit
`

const mainHelp = `
MAIN MENU OPTIONS:
1 - View Service Alerts
2 - Track a Bus: Add/remove/view routes to track real-time vehicles
3 - Get Route Updates: Interactive tool for tracking by stop & route
4 - Manage Tracked Routes: Add/remove routes from your tracked list
5 - Agency Info
H - Help
Q - Quit the application
`

func main() {
	configPath := flag.String("config", "config.yml", "path to YAML configuration file")
	flag.Parse()

	logging.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	// A missing or corrupt static dataset is a configuration problem the
	// user must fix before the tool is usable, so this is fatal.
	idx, err := gtfs.Load(cfg.GTFS.StaticZipPath)
	if err != nil {
		slog.Error("loading static schedule", "path", cfg.GTFS.StaticZipPath, "err", err)
		os.Exit(1)
	}

	rt := gtfsrt.NewClient(gtfsrt.FeedConfig{
		AlertsURL:           cfg.GTFSRT.AlertsURL,
		TripUpdatesURL:      cfg.GTFSRT.TripUpdatesURL,
		VehiclePositionsURL: cfg.GTFSRT.VehiclePositionsURL,
	}, time.Duration(cfg.GTFSRT.TimeoutMS)*time.Millisecond)

	a := &app{
		st:  session.New(),
		idx: idx,
		rt:  rt,
		in:  bufio.NewScanner(os.Stdin),
	}

	fmt.Print(welcome)
	for {
		fmt.Print(mainMenu)
		fmt.Print("Select an option: ")
		if !a.in.Scan() {
			return
		}
		choice := strings.ToLower(strings.TrimSpace(a.in.Text()))
		quitCheck(choice)

		switch choice {
		case "1":
			fmt.Println("You can choose which routes to see alerts for, or type 'all' to see everything.")
			a.alertsMenu()
		case "2":
			fmt.Println("You can track buses by route and view live vehicle positions.")
			a.vehicleMenu()
		case "3":
			a.arrivalsMenu()
		case "4":
			a.routeManagerMenu()
		case "5":
			a.agencyInfo()
		case "h":
			fmt.Print(mainHelp)
		default:
			fmt.Println("Invalid option. Type 'H' for help.")
		}
	}
}

// quitCheck terminates the process on an explicit quit command. This is the
// only way the session ends besides EOF on stdin.
func quitCheck(input string) {
	if input == "q" || input == "quit" {
		fmt.Println("Exiting...")
		os.Exit(0)
	}
}
