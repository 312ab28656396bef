package gtfs

import (
	"sort"
	"strings"
)

// ScheduleIndex stores the static schedule in memory for fast lookups.
// It is built once per archive and never mutated afterwards; query results
// are identical to scanning the raw tables on every call.
type ScheduleIndex struct {
	stops       []Stop         // stops.txt file order
	stopIdx     map[string]int // stop_id -> index into stops
	tripToRoute map[string]string
	stopTimes   []StopTime // stop_times.txt file order
	agencies    []Agency
}

func newScheduleIndex() *ScheduleIndex {
	return &ScheduleIndex{
		stopIdx:     map[string]int{},
		tripToRoute: map[string]string{},
	}
}

// Stops returns every stop in stops.txt file order.
func (g *ScheduleIndex) Stops() []Stop { return g.stops }

// StopByID resolves a stop_id to its full record.
func (g *ScheduleIndex) StopByID(stopID string) (Stop, bool) {
	i, ok := g.stopIdx[stopID]
	if !ok {
		return Stop{}, false
	}
	return g.stops[i], true
}

// RoutesForStop returns the sorted, de-duplicated route IDs of every trip
// that calls at the stop. Sorting is lexicographic so output is
// deterministic.
func (g *ScheduleIndex) RoutesForStop(stopID string) []string {
	set := map[string]struct{}{}
	for _, st := range g.stopTimes {
		if st.StopID != stopID {
			continue
		}
		if route, ok := g.tripToRoute[st.TripID]; ok && route != "" {
			set[route] = struct{}{}
		}
	}
	routes := make([]string, 0, len(set))
	for r := range set {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	return routes
}

// StopsForRoute is the inverse join: every stop visited by any trip of the
// route. The route match is case-insensitive. Stops come back in stable
// first-encounter order over the stop_times scan.
func (g *ScheduleIndex) StopsForRoute(routeID string) []Stop {
	trips := map[string]struct{}{}
	for tripID, route := range g.tripToRoute {
		if strings.EqualFold(route, routeID) {
			trips[tripID] = struct{}{}
		}
	}
	seen := map[string]struct{}{}
	var stops []Stop
	for _, st := range g.stopTimes {
		if _, ok := trips[st.TripID]; !ok {
			continue
		}
		if _, dup := seen[st.StopID]; dup {
			continue
		}
		seen[st.StopID] = struct{}{}
		if s, ok := g.StopByID(st.StopID); ok {
			stops = append(stops, s)
		}
	}
	return stops
}

// StopsByName returns stops whose name contains the keyword,
// case-insensitively, in stops.txt file order.
func (g *ScheduleIndex) StopsByName(keyword string) []Stop {
	kw := strings.ToLower(keyword)
	var matches []Stop
	for _, s := range g.stops {
		if strings.Contains(strings.ToLower(s.Name), kw) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Agencies returns the agency.txt rows; callers typically use the first.
func (g *ScheduleIndex) Agencies() []Agency { return g.agencies }
