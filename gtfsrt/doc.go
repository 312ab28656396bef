/*
Package gtfsrt fetches one agency's GTFS-realtime feeds and decodes them
into plain record slices.

Each of the three endpoints (service alerts, trip updates, vehicle
positions) is fetched with a single blocking GET and decoded with the
MobilityData protobuf bindings. Fetch and decode failures come back as
*TransportError or *DecodeError together with a nil slice; they are meant
to be reported and survived, never to crash the session.
*/
package gtfsrt
