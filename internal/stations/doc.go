// Package stations loads observation stations from GeoJSON and summarizes how
// they are distributed around a location.
//
// A station file is a GeoJSON FeatureCollection whose features are Points with
// coordinates in [longitude, latitude] order. Each feature may carry a string
// "id", and "name" / "station_id" properties. Features with any other geometry
// type are skipped.
//
// # Distribution
//
// Distribute places a coordinate classifier at the given location and counts
// quadrant memberships over all stations. Longitude is the x axis and latitude
// the y axis, so FIRST is north-east, SECOND north-west, THIRD south-west and
// FOURTH south-east. A station exactly due north or south of the location is
// counted in both neighbouring quadrants.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Station slices returned by Load are shared
// with the cache and must not be modified; FilterByDistance returns a new slice.
package stations
