/*
Package gtfs loads a GTFS static zip archive and answers lookup and join
queries over it without callers knowing the on-disk layout.

The archive is parsed once into a ScheduleIndex; the index is immutable for
the life of the process. Required tables are stops.txt, trips.txt,
stop_times.txt and agency.txt. A missing archive or table is a
*NotFoundError; a table missing a required column is a *FormatError. Both
surface to the caller, since a corrupt static dataset is a configuration
problem the user has to fix before the tool is usable.

	idx, err := gtfs.Load("data/Static_data.zip")
	if err != nil {
	    log.Fatal(err)
	}
	routes := idx.RoutesForStop("1001")
*/
package gtfs
