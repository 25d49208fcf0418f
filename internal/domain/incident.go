package domain

import "time"

// Incident is a single point-located homicide report. The record itself is
// immutable after load; the derived temporal attributes are computed once by
// [Derive] and carried for the lifetime of the in-memory collection, never
// persisted back to the source database.
type Incident struct {
	CaseNumber          string
	Description         string
	LocationDescription string
	Year                int
	Latitude            float64
	Longitude           float64
	OccurredAt          time.Time

	// Derived attributes.
	DayName   string // "Monday" .. "Sunday"
	Hour      int    // 0-23
	MonthName string // "January" .. "December"
	Season    string // "Winter", "Spring", "Summer", "Fall"
}
