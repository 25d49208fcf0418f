// Package domain models Chicago homicide report data and its derived
// temporal attributes.
//
// # Data Source
//
// Incident rows come from a sqlite extract of the Chicago Data Portal
// "Crimes - 2001 to Present" dataset, filtered to homicides. Column names
// keep the portal's spelling, including embedded spaces:
//
//	"Case Number", "Date", "Description", "Location Description",
//	"Year", "Latitude", "Longitude"
//
// Coordinates are WGS-84. Rows without coordinates exist in the portal data
// (redacted addresses); the store excludes them in SQL so they never enter
// the in-memory collection.
//
// Community-area boundaries come from the portal's GeoJSON export. Region
// names live in the "community" feature property; geometries are Polygon or
// MultiPolygon in lon/lat order.
//
// # Time Conventions
//
// The "Date" column is local civil time encoded as "2006-01-02 15:04:05".
// Derived attributes:
//
//	DayName   weekday label, Monday-first ordering in all presentation
//	Hour      0-23, presented with 12-hour labels ("12 AM" .. "11 PM")
//	MonthName calendar month label
//	Season    Winter = Dec/Jan/Feb, Spring = Mar-May,
//	          Summer = Jun-Aug, Fall = Sep-Nov
//
// The season partition is total over months 1-12 with no gaps; see [SeasonOf].
package domain
