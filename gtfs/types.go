package gtfs

// Stop is one row of stops.txt.
type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// StopTime is one row of stop_times.txt, kept in file order.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
}

// Agency is one row of agency.txt. All fields are optional in the feed;
// absent columns stay empty.
type Agency struct {
	Name     string
	URL      string
	Timezone string
	Language string
	Phone    string
}
