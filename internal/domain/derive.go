package domain

import (
	"fmt"
	"time"
)

// WeekdayOrder is the fixed Monday-first presentation order used by every
// weekday aggregation and chart.
var WeekdayOrder = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SeasonOrder is the fixed presentation order for seasonal aggregations.
var SeasonOrder = [4]string{"Winter", "Spring", "Summer", "Fall"}

// incidentTimeLayouts lists the accepted timestamp encodings, tried in order.
// The sqlite extract stores "2006-01-02 15:04:05"; the RFC 3339 variants cover
// re-exported databases.
var incidentTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseIncidentTime parses a raw Date column value. An unparseable timestamp
// is an error: it fails the load step rather than producing a zero-time
// incident with bogus derived attributes.
func ParseIncidentTime(s string) (time.Time, error) {
	for _, layout := range incidentTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable incident timestamp %q", s)
}

// Derive computes the temporal attributes from the incident's timestamp and
// returns the annotated copy. Pure function; safe to call more than once.
func Derive(inc Incident) Incident {
	inc.DayName = inc.OccurredAt.Weekday().String()
	inc.Hour = inc.OccurredAt.Hour()
	inc.MonthName = inc.OccurredAt.Month().String()
	inc.Season = SeasonOf(inc.OccurredAt.Month())
	return inc
}

// SeasonOf classifies a month into one of the four fixed seasons:
// Winter = Dec/Jan/Feb, Spring = Mar-May, Summer = Jun-Aug, Fall = Sep-Nov.
// Total over all twelve months.
func SeasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Fall"
	}
}

// HourLabel formats an hour of day (0-23) as a 12-hour clock label,
// e.g. 0 -> "12 AM", 13 -> "1 PM".
func HourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
