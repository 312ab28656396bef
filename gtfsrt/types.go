package gtfsrt

// ActivePeriod is one alert validity window, already converted to the
// rider-facing local-time form.
type ActivePeriod struct {
	Start string
	End   string
}

// Alert is one service alert from the realtime feed. Route IDs are
// uppercased at this boundary; all route comparisons downstream are
// case-insensitive.
type Alert struct {
	Header        string
	Description   string
	ActivePeriods []ActivePeriod
	Routes        []string
	Stops         []string
}

// TripUpdateRecord is one stop-time update from the trip updates feed,
// keyed implicitly by (StopID, RouteID) at query time. Times are Unix
// seconds.
type TripUpdateRecord struct {
	RouteID       string
	StopID        string
	StopSequence  int
	ArrivalTime   int64
	DepartureTime int64
}

// VehiclePosition is one live vehicle location. Timestamp is Unix seconds.
type VehiclePosition struct {
	RouteID   string
	Lat       float64
	Lon       float64
	Timestamp int64
}
