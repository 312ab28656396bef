package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"io/fs"
	"strconv"
	"strings"
)

// Load opens a local GTFS static zip archive and builds a ScheduleIndex
// from stops.txt, trips.txt, stop_times.txt and agency.txt.
func Load(path string) (*ScheduleIndex, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Name: path, Err: err}
		}
		return nil, err
	}
	defer zr.Close()
	return loadFromZip(&zr.Reader)
}

// LoadFromReader builds a ScheduleIndex from an already-open zip reader.
func LoadFromReader(zr *zip.Reader) (*ScheduleIndex, error) {
	return loadFromZip(zr)
}

var requiredTables = []string{"stops.txt", "trips.txt", "stop_times.txt", "agency.txt"}

func loadFromZip(zr *zip.Reader) (*ScheduleIndex, error) {
	g := newScheduleIndex()
	seen := map[string]bool{}
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		switch name {
		case "stops.txt", "trips.txt", "stop_times.txt", "agency.txt":
			seen[name] = true
			if err := g.consumeCSV(f, name); err != nil {
				return nil, err
			}
		}
	}
	for _, table := range requiredTables {
		if !seen[table] {
			return nil, &NotFoundError{Name: table}
		}
	}
	return g, nil
}

func (g *ScheduleIndex) consumeCSV(f *zip.File, table string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return &FormatError{Table: table, Column: "(header row)"}
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	require := func(cols ...string) (map[string]int, error) {
		out := make(map[string]int, len(cols))
		for _, c := range cols {
			i := idx(c)
			if i < 0 {
				return nil, &FormatError{Table: table, Column: c}
			}
			out[c] = i
		}
		return out, nil
	}
	field := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	switch table {
	case "stops.txt":
		cols, err := require("stop_id", "stop_name", "stop_lat", "stop_lon")
		if err != nil {
			return err
		}
		for _, row := range rec[1:] {
			lat, _ := strconv.ParseFloat(field(row, cols["stop_lat"]), 64)
			lon, _ := strconv.ParseFloat(field(row, cols["stop_lon"]), 64)
			s := Stop{
				ID:   field(row, cols["stop_id"]),
				Name: field(row, cols["stop_name"]),
				Lat:  lat,
				Lon:  lon,
			}
			g.stopIdx[s.ID] = len(g.stops)
			g.stops = append(g.stops, s)
		}
	case "trips.txt":
		cols, err := require("trip_id", "route_id")
		if err != nil {
			return err
		}
		for _, row := range rec[1:] {
			g.tripToRoute[field(row, cols["trip_id"])] = field(row, cols["route_id"])
		}
	case "stop_times.txt":
		cols, err := require("trip_id", "stop_id", "stop_sequence")
		if err != nil {
			return err
		}
		for _, row := range rec[1:] {
			seq, _ := strconv.Atoi(field(row, cols["stop_sequence"]))
			g.stopTimes = append(g.stopTimes, StopTime{
				TripID:       field(row, cols["trip_id"]),
				StopID:       field(row, cols["stop_id"]),
				StopSequence: seq,
			})
		}
	case "agency.txt":
		// All agency columns are optional; absent column means empty value.
		name := idx("agency_name")
		url := idx("agency_url")
		tz := idx("agency_timezone")
		lang := idx("agency_lang")
		phone := idx("agency_phone")
		for _, row := range rec[1:] {
			g.agencies = append(g.agencies, Agency{
				Name:     field(row, name),
				URL:      field(row, url),
				Timezone: field(row, tz),
				Language: field(row, lang),
				Phone:    field(row, phone),
			})
		}
	}
	return nil
}
