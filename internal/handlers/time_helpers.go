package handlers

import (
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/timezone"
)

// The studio runs in one operating timezone; all request dates are
// interpreted there.

func operatingLocation(tz string) *time.Location {
	return timezone.Location(tz)
}

func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
