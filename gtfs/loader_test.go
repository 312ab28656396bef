package gtfs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"transit-assistant/gtfs"
)

func TestLoad_MissingArchive(t *testing.T) {
	is := is.New(t)

	_, err := gtfs.Load(filepath.Join(t.TempDir(), "nope.zip"))
	var nf *gtfs.NotFoundError
	is.True(errors.As(err, &nf))
}

func TestLoad_MissingTable(t *testing.T) {
	is := is.New(t)
	tables := minimalTables()
	delete(tables, "stop_times.txt")

	_, err := gtfs.LoadFromReader(buildArchive(t, tables))
	var nf *gtfs.NotFoundError
	is.True(errors.As(err, &nf))
	is.Equal(nf.Name, "stop_times.txt")
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	is := is.New(t)
	tables := minimalTables()
	tables["stops.txt"] = "stop_id,stop_lat,stop_lon\n1001,44.64,-63.57\n"

	_, err := gtfs.LoadFromReader(buildArchive(t, tables))
	var fe *gtfs.FormatError
	is.True(errors.As(err, &fe))
	is.Equal(fe.Table, "stops.txt")
	is.Equal(fe.Column, "stop_name")
}

func TestLoad_UppercaseTableNames(t *testing.T) {
	is := is.New(t)
	tables := map[string]string{}
	for name, body := range minimalTables() {
		tables[name] = body
	}
	// Some agencies ship archives with odd casing.
	tables["STOPS.TXT"] = tables["stops.txt"]
	delete(tables, "stops.txt")

	idx, err := gtfs.LoadFromReader(buildArchive(t, tables))
	is.NoErr(err)
	is.Equal(len(idx.Stops()), 2)
}
