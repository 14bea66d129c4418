package validators

import "regexp"

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsTimeOfDay validates a session time in "HH:MM" 24h format.
func IsTimeOfDay(v string) bool {
	return timeOfDayRe.MatchString(v)
}
