// Package session holds the interactive session state: the user's tracked
// routes and the currently selected stop. The state is owned by the CLI
// loops and threaded through handlers explicitly; nothing else mutates it.
package session

import (
	"strings"
)

// State is the mutable per-session state. Route IDs are normalized to
// uppercase on entry; comparisons everywhere else are case-insensitive.
type State struct {
	routes      []string // insertion order
	CurrentStop string
}

func New() *State {
	return &State{}
}

// AddRoute tracks a route. Returns the normalized ID and false when the
// route was already tracked.
func (s *State) AddRoute(route string) (string, bool) {
	r := Normalize(route)
	for _, existing := range s.routes {
		if existing == r {
			return r, false
		}
	}
	s.routes = append(s.routes, r)
	return r, true
}

// RemoveRoute stops tracking a route. Returns false when it was not
// tracked.
func (s *State) RemoveRoute(route string) (string, bool) {
	r := Normalize(route)
	for i, existing := range s.routes {
		if existing == r {
			s.routes = append(s.routes[:i], s.routes[i+1:]...)
			return r, true
		}
	}
	return r, false
}

// Routes returns the tracked routes in the order they were added. The
// returned slice is shared; callers must not mutate it.
func (s *State) Routes() []string { return s.routes }

// Tracks reports whether a route is tracked.
func (s *State) Tracks(route string) bool {
	r := Normalize(route)
	for _, existing := range s.routes {
		if existing == r {
			return true
		}
	}
	return false
}

// Normalize uppercases and trims a user-entered route ID.
func Normalize(route string) string {
	return strings.ToUpper(strings.TrimSpace(route))
}

// ValidStopID enforces this agency's stop numbering scheme: exactly four
// digits. This is a domain constraint of the deployment, not a GTFS rule.
func ValidStopID(stopID string) bool {
	if len(stopID) != 4 {
		return false
	}
	for _, c := range stopID {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
