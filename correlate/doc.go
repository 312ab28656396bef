// Package correlate joins realtime feed records against the static
// schedule: arrivals at a stop, alerts for tracked routes, nearest stops to
// a point. It produces the filtered, ordered result sets the presentation
// layer renders.
package correlate
