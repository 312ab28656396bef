package main

import (
	"bufio"
	"fmt"
	"strings"

	"transit-assistant/correlate"
	"transit-assistant/gtfs"
	"transit-assistant/gtfsrt"
	"transit-assistant/session"
	"transit-assistant/utils"
)

// app bundles the pieces every menu needs: session state, the static
// schedule index, the realtime client and the input scanner. Handlers
// receive it explicitly instead of closing over loop variables.
type app struct {
	st  *session.State
	idx *gtfs.ScheduleIndex
	rt  *gtfsrt.Client
	in  *bufio.Scanner
}

type handler func(a *app, arg string)

// runLoop reads commands of the form "name [arg]" and dispatches them
// through the handler table. help, back and quit are shared across every
// menu; anything unrecognized re-prompts.
func (a *app) runLoop(prompt, help string, handlers map[string]handler) {
	fmt.Println(help)
	for {
		fmt.Printf("%s >> ", prompt)
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		name = strings.ToLower(name)
		arg = strings.TrimSpace(arg)
		quitCheck(name)
		switch name {
		case "back":
			fmt.Println("Returning to previous menu.")
			return
		case "help":
			fmt.Println(help)
			continue
		}
		h, ok := handlers[name]
		if !ok {
			fmt.Println("Invalid command. Type 'help' for available options.")
			continue
		}
		h(a, arg)
	}
}

// ---- Service alerts ----

const alertsHelp = `
[Alert Fetcher]
Commands:
  add <ROUTE_ID>      Track a route (e.g., add 10)
  remove <ROUTE_ID>   Stop tracking a route
  list                Show tracked routes
  show                Display alerts for tracked routes
  all                 Show all alerts (ignore route filter)
  back                Return to main menu`

func (a *app) alertsMenu() {
	a.runLoop("AlertFetcher", alertsHelp, map[string]handler{
		"add":    addRoute,
		"remove": removeRoute,
		"list":   listRoutes,
		"show": func(a *app, _ string) {
			// An empty (but non-nil) filter matches nothing; only the
			// nil sentinel from 'all' disables filtering.
			routes := a.st.Routes()
			if routes == nil {
				routes = []string{}
			}
			a.showAlerts(routes)
		},
		"all": func(a *app, _ string) {
			a.showAlerts(nil)
		},
	})
}

// showAlerts fetches the alerts feed and prints the alerts matching the
// filter; a nil filter shows everything. A feed failure is reported and the
// menu keeps running.
func (a *app) showAlerts(trackedRoutes []string) {
	alerts, err := a.rt.FetchAlerts()
	if err != nil {
		fmt.Println("Error fetching or parsing alerts:", err)
		return
	}
	if len(alerts) == 0 {
		fmt.Println("No current alerts.")
		return
	}
	matched := correlate.AlertsMatching(alerts, trackedRoutes)
	if len(matched) == 0 {
		fmt.Println("No alerts affecting your selected routes.")
		return
	}
	for _, alert := range matched {
		fmt.Println("----- ALERT -----")
		fmt.Println("Header:", alert.Header)
		fmt.Println("Description:", alert.Description)
		for _, p := range alert.ActivePeriods {
			fmt.Println("Start:", p.Start)
			fmt.Println("End:  ", p.End)
		}
		if len(alert.Routes) > 0 {
			fmt.Println("Routes affected:", strings.Join(alert.Routes, ", "))
		}
		if len(alert.Stops) > 0 {
			fmt.Println("Stops affected:")
			for _, stopID := range alert.Stops {
				fmt.Printf("  - Stop ID: %s\n", stopID)
			}
		}
		fmt.Println()
	}
}

// ---- Vehicle tracker ----

const vehicleHelp = `
[Vehicle Tracker]
Commands:
  add <ROUTE>      Add a route to track (e.g., add 10)
  remove <ROUTE>   Stop tracking a route
  routes           Show all currently tracked routes
  show             Display real-time info for tracked buses
  back             Return to the main menu`

func (a *app) vehicleMenu() {
	a.runLoop("VehicleTracker", vehicleHelp, map[string]handler{
		"add":    addRoute,
		"remove": removeRoute,
		"routes": listRoutes,
		"show":   showVehicles,
	})
}

func showVehicles(a *app, _ string) {
	positions, err := a.rt.FetchVehiclePositions()
	if err != nil {
		fmt.Println("Error fetching vehicle data:", err)
		return
	}
	found := false
	for _, v := range positions {
		if !a.st.Tracks(v.RouteID) {
			continue
		}
		found = true
		fmt.Println("\n--- Vehicle Update ---")
		fmt.Printf("Route: %s\n", v.RouteID)
		fmt.Printf("Location: Lat %.4f, Lon %.4f\n", v.Lat, v.Lon)
		fmt.Printf("Timestamp: %s\n", utils.DisplayTimeFromUnixSeconds(v.Timestamp))
	}
	if !found {
		fmt.Println("No vehicles found on the tracked routes.")
	}
}

// ---- Trip updater (arrivals) ----

const arrivalsHelp = `
[Trip Updater]
Commands:
  find               Find stops
  stop <STOP_ID>     Set the stop ID for updates (must be 4-digit)
  route <ROUTE_ID>   Show arrivals for a specific route
  routes             Show all routes serving the stop
  all                Show all arrivals at a stop
  clear              Clear the currently set stop ID
  back               Return to the main menu`

func (a *app) arrivalsMenu() {
	a.runLoop("TripUpdater", arrivalsHelp, map[string]handler{
		"find": func(a *app, _ string) { a.stopFinderMenu() },
		"stop": setStop,
		"route": func(a *app, arg string) {
			if requireStop(a) {
				a.showArrivals(a.st.CurrentStop, arg)
			}
		},
		"routes": routesAtStop,
		"all": func(a *app, _ string) {
			if requireStop(a) {
				a.showArrivals(a.st.CurrentStop, correlate.RouteFilterAll)
			}
		},
		"clear": func(a *app, _ string) {
			a.st.CurrentStop = ""
			fmt.Println("Cleared stop ID. Use 'stop <STOP_ID>' to set a new one.")
		},
	})
}

func setStop(a *app, arg string) {
	if !session.ValidStopID(arg) {
		fmt.Println("Invalid stop ID. Must be a 4-digit number.")
		return
	}
	a.st.CurrentStop = arg
	fmt.Printf("Stop set to %s.\n", arg)
}

func requireStop(a *app) bool {
	if a.st.CurrentStop == "" {
		fmt.Println("Please enter a stop ID first (use: stop <STOP_ID>)")
		return false
	}
	return true
}

func routesAtStop(a *app, _ string) {
	if !requireStop(a) {
		return
	}
	routes := a.idx.RoutesForStop(a.st.CurrentStop)
	if len(routes) == 0 {
		fmt.Println("No routes found for that stop.")
		return
	}
	fmt.Println("Routes at stop:", strings.Join(routes, ", "))
}

func (a *app) showArrivals(stopID, routeFilter string) {
	updates, err := a.rt.FetchTripUpdates()
	if err != nil {
		fmt.Println("Error fetching trip updates:", err)
		return
	}
	arrivals := correlate.ArrivalsFor(updates, stopID, routeFilter)
	if len(arrivals) == 0 {
		fmt.Println("No upcoming arrivals for that stop and route.")
		return
	}
	for _, trip := range arrivals {
		fmt.Printf("-> Route %s @ Stop %s\n", trip.RouteID, stopID)
		fmt.Printf("   Stop Seq: %d\n", trip.StopSequence)
		fmt.Printf("   Arrival: %s\n", utils.DisplayTimeFromUnixSeconds(trip.ArrivalTime))
		fmt.Printf("   Departure: %s\n", utils.DisplayTimeFromUnixSeconds(trip.DepartureTime))
		fmt.Println(strings.Repeat("-", 30))
	}
}

// ---- Stop finder ----

const stopFinderOptions = `
[Stop Finder]
1 - Search for a stop by name
2 - Find 3 closest stops by coordinates
3 - Get all stops served by a route
B - Back to previous menu`

func (a *app) stopFinderMenu() {
	for {
		fmt.Println(stopFinderOptions)
		fmt.Print("StopFinder >> ")
		if !a.in.Scan() {
			return
		}
		option := strings.ToLower(strings.TrimSpace(a.in.Text()))
		quitCheck(option)
		switch option {
		case "1":
			fmt.Print("Enter part of the stop name: ")
			if !a.in.Scan() {
				return
			}
			a.findStopsByName(strings.TrimSpace(a.in.Text()))
		case "2":
			fmt.Print("Enter latitude: ")
			if !a.in.Scan() {
				return
			}
			lat := strings.TrimSpace(a.in.Text())
			fmt.Print("Enter longitude: ")
			if !a.in.Scan() {
				return
			}
			lon := strings.TrimSpace(a.in.Text())
			a.findClosestStops(lat, lon)
		case "3":
			fmt.Print("Enter Route ID: ")
			if !a.in.Scan() {
				return
			}
			a.findStopsForRoute(session.Normalize(a.in.Text()))
		case "b":
			return
		default:
			fmt.Println("Invalid option. Choose 1, 2, 3, or B.")
		}
	}
}

func (a *app) findStopsByName(keyword string) {
	matches := a.idx.StopsByName(keyword)
	if len(matches) == 0 {
		fmt.Println("No stops found.")
		return
	}
	for _, stop := range matches {
		fmt.Printf("%s -> %s\n", stop.ID, stop.Name)
	}
}

func (a *app) findClosestStops(lat, lon string) {
	closest, err := correlate.NearestStops(a.idx.Stops(), lat, lon, 3)
	if err != nil {
		// Malformed coordinates re-prompt; they never abort the session.
		fmt.Println("Invalid coordinates.")
		return
	}
	for _, sd := range closest {
		fmt.Printf("%s -> %s (%.2f km)\n", sd.Stop.ID, sd.Stop.Name, sd.DistanceKM)
	}
}

func (a *app) findStopsForRoute(routeID string) {
	stops := a.idx.StopsForRoute(routeID)
	if len(stops) == 0 {
		fmt.Println("No stops found for that route.")
		return
	}
	for _, stop := range stops {
		fmt.Printf("%s -> %s\n", stop.ID, stop.Name)
	}
}

// ---- Route manager ----

const routeManagerHelp = `
ROUTE MANAGER COMMANDS:
  add <ROUTE>    Add a bus route to your tracking list (e.g., add 10)
  remove <ROUTE> Remove a bus route from your tracking list
  list           View all tracked routes
  back           Return to main menu`

func (a *app) routeManagerMenu() {
	a.runLoop("RouteManager", routeManagerHelp, map[string]handler{
		"add":    addRoute,
		"remove": removeRoute,
		"list":   listRoutes,
	})
}

func addRoute(a *app, arg string) {
	route, added := a.st.AddRoute(arg)
	if added {
		fmt.Printf("Tracking %s.\n", route)
	} else {
		fmt.Printf("%s is already tracked.\n", route)
	}
}

func removeRoute(a *app, arg string) {
	route, removed := a.st.RemoveRoute(arg)
	if removed {
		fmt.Printf("Stopped tracking %s.\n", route)
	} else {
		fmt.Printf("%s is not being tracked.\n", route)
	}
}

func listRoutes(a *app, _ string) {
	routes := a.st.Routes()
	if len(routes) == 0 {
		fmt.Println("Currently tracking: (none)")
		return
	}
	fmt.Println("Currently tracking:", strings.Join(routes, ", "))
}

// ---- Agency info ----

func (a *app) agencyInfo() {
	agencies := a.idx.Agencies()
	if len(agencies) == 0 {
		fmt.Println("No agency information in the static dataset.")
		return
	}
	for _, ag := range agencies {
		fmt.Println("Agency Name:", ag.Name)
		fmt.Println("Agency URL:", ag.URL)
		fmt.Println("Timezone:", ag.Timezone)
		fmt.Println("Language:", ag.Language)
		fmt.Println("Phone:", ag.Phone)
		fmt.Println()
	}
}
