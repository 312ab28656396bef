package correlate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"transit-assistant/gtfs"
	"transit-assistant/gtfsrt"
	"transit-assistant/utils"
)

// RouteFilterAll is the sentinel that disables route filtering.
const RouteFilterAll = "all"

// InvalidInputError reports malformed user-supplied input, such as
// coordinates that do not parse. It is caught at the input boundary and
// re-prompts the user; it never aborts the session.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ArrivalsFor keeps the stop-time updates for one stop, optionally narrowed
// to one route (case-insensitive; RouteFilterAll keeps every route), sorted
// ascending by arrival time. Ties keep original feed order. An empty result
// is a normal outcome, not an error.
func ArrivalsFor(updates []gtfsrt.TripUpdateRecord, stopID, routeFilter string) []gtfsrt.TripUpdateRecord {
	var matched []gtfsrt.TripUpdateRecord
	for _, u := range updates {
		if u.StopID != stopID {
			continue
		}
		if !strings.EqualFold(routeFilter, RouteFilterAll) && !strings.EqualFold(u.RouteID, routeFilter) {
			continue
		}
		matched = append(matched, u)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ArrivalTime < matched[j].ArrivalTime
	})
	return matched
}

// AlertsMatching returns the alerts whose route set intersects the tracked
// set. A nil tracked set matches everything. Non-matching alerts are
// silently dropped.
func AlertsMatching(alerts []gtfsrt.Alert, trackedRoutes []string) []gtfsrt.Alert {
	if trackedRoutes == nil {
		return alerts
	}
	tracked := map[string]struct{}{}
	for _, r := range trackedRoutes {
		tracked[strings.ToUpper(r)] = struct{}{}
	}
	var matched []gtfsrt.Alert
	for _, a := range alerts {
		for _, r := range a.Routes {
			if _, ok := tracked[strings.ToUpper(r)]; ok {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched
}

// StopDistance pairs a stop with its great-circle distance from the query
// point in kilometers.
type StopDistance struct {
	Stop       gtfs.Stop
	DistanceKM float64
}

// NearestStops returns the k stops closest to the given point, ascending by
// distance with ties in input order. Coordinates arrive as user-entered
// strings and fail with *InvalidInputError before any distance computation.
func NearestStops(stops []gtfs.Stop, latStr, lonStr string, k int) ([]StopDistance, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nil, &InvalidInputError{Field: "latitude", Value: latStr}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return nil, &InvalidInputError{Field: "longitude", Value: lonStr}
	}
	distances := make([]StopDistance, 0, len(stops))
	for _, s := range stops {
		distances = append(distances, StopDistance{
			Stop:       s,
			DistanceKM: utils.HaversineKM(lat, lon, s.Lat, s.Lon),
		})
	}
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].DistanceKM < distances[j].DistanceKM
	})
	if k < len(distances) {
		distances = distances[:k]
	}
	return distances, nil
}
