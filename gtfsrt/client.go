package gtfsrt

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"transit-assistant/utils"
)

// FeedConfig carries the three realtime endpoint URLs. It is built once at
// startup and never mutated; swapping the URLs is the sole way to retarget
// the assistant to a different transit authority.
type FeedConfig struct {
	AlertsURL           string
	TripUpdatesURL      string
	VehiclePositionsURL string
}

// Client fetches and decodes the GTFS-realtime feeds of one agency. Each
// fetch is a single blocking GET; there is no retry, caching or background
// refresh.
type Client struct {
	cfg        FeedConfig
	httpClient *http.Client
}

// NewClient creates a feed client. A timeout of zero leaves the underlying
// HTTP client without a deadline.
func NewClient(cfg FeedConfig, timeout time.Duration) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// fetchFeed GETs one endpoint and unmarshals the protobuf payload.
func (c *Client) fetchFeed(url string) (*gtfsrtpb.FeedMessage, error) {
	slog.Debug("fetching realtime feed", "url", url)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return &fm, nil
}

// FetchAlerts fetches and decodes the service alerts feed. On transport or
// decode failure it returns a nil slice plus the error; a feed outage must
// not end the session, so callers report the error and carry on.
func (c *Client) FetchAlerts() ([]Alert, error) {
	fm, err := c.fetchFeed(c.cfg.AlertsURL)
	if err != nil {
		return nil, err
	}
	var alerts []Alert
	for _, e := range fm.Entity {
		if e.Alert == nil {
			continue
		}
		a := e.Alert
		al := Alert{}
		routeSeen := map[string]struct{}{}
		stopSeen := map[string]struct{}{}
		for _, ie := range a.InformedEntity {
			if ie.RouteId != nil && *ie.RouteId != "" {
				rid := strings.ToUpper(*ie.RouteId)
				if _, dup := routeSeen[rid]; !dup {
					routeSeen[rid] = struct{}{}
					al.Routes = append(al.Routes, rid)
				}
			}
			if ie.StopId != nil && *ie.StopId != "" {
				sid := *ie.StopId
				if _, dup := stopSeen[sid]; !dup {
					stopSeen[sid] = struct{}{}
					al.Stops = append(al.Stops, sid)
				}
			}
		}
		al.Header = translatedText(a.HeaderText)
		al.Description = translatedText(a.DescriptionText)
		for _, p := range a.ActivePeriod {
			var ap ActivePeriod
			if p.Start != nil {
				ap.Start = utils.DisplayTimeFromUnixSeconds(int64(*p.Start))
			}
			if p.End != nil {
				ap.End = utils.DisplayTimeFromUnixSeconds(int64(*p.End))
			}
			al.ActivePeriods = append(al.ActivePeriods, ap)
		}
		alerts = append(alerts, al)
	}
	return alerts, nil
}

// FetchTripUpdates fetches the full trip updates feed, one record per
// stop-time update. Filtering by stop or route is the correlation layer's
// job. Same fail-soft contract as FetchAlerts.
func (c *Client) FetchTripUpdates() ([]TripUpdateRecord, error) {
	fm, err := c.fetchFeed(c.cfg.TripUpdatesURL)
	if err != nil {
		return nil, err
	}
	var records []TripUpdateRecord
	for _, e := range fm.Entity {
		if e.TripUpdate == nil || e.TripUpdate.Trip == nil {
			continue
		}
		routeID := ""
		if e.TripUpdate.Trip.RouteId != nil {
			routeID = *e.TripUpdate.Trip.RouteId
		}
		for _, stu := range e.TripUpdate.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			rec := TripUpdateRecord{
				RouteID: routeID,
				StopID:  *stu.StopId,
			}
			if stu.StopSequence != nil {
				rec.StopSequence = int(*stu.StopSequence)
			}
			if stu.Arrival != nil && stu.Arrival.Time != nil {
				rec.ArrivalTime = *stu.Arrival.Time
			}
			if stu.Departure != nil && stu.Departure.Time != nil {
				rec.DepartureTime = *stu.Departure.Time
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// FetchVehiclePositions fetches the live vehicle locations feed. Same
// fail-soft contract as FetchAlerts.
func (c *Client) FetchVehiclePositions() ([]VehiclePosition, error) {
	fm, err := c.fetchFeed(c.cfg.VehiclePositionsURL)
	if err != nil {
		return nil, err
	}
	var positions []VehiclePosition
	for _, e := range fm.Entity {
		if e.Vehicle == nil {
			continue
		}
		v := e.Vehicle
		vp := VehiclePosition{}
		if v.Trip != nil && v.Trip.RouteId != nil {
			vp.RouteID = *v.Trip.RouteId
		}
		if v.Position != nil {
			if v.Position.Latitude != nil {
				vp.Lat = float64(*v.Position.Latitude)
			}
			if v.Position.Longitude != nil {
				vp.Lon = float64(*v.Position.Longitude)
			}
		}
		if v.Timestamp != nil {
			vp.Timestamp = int64(*v.Timestamp)
		}
		positions = append(positions, vp)
	}
	return positions, nil
}

func translatedText(ts *gtfsrtpb.TranslatedString) string {
	if ts == nil {
		return ""
	}
	parts := make([]string, 0, len(ts.Translation))
	for _, t := range ts.Translation {
		if t.Text != nil {
			parts = append(parts, *t.Text)
		}
	}
	return strings.Join(parts, "\n")
}
