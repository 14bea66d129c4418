package reminder

import "time"

// ===============================
// Reminder window
// ===============================

const (
	// TargetLead is how far before a session's start the reminder goes out.
	TargetLead = 2 * time.Hour

	// Tolerances widen the window around the target so that, with a 15-minute
	// scan period, every qualifying session is observed in exactly one tick
	// even under small clock drift. The overlap margin avoids a hard boundary
	// race at the edges.
	EarlyTolerance = 7 * time.Minute
	LateTolerance  = 8 * time.Minute

	// DefaultInterval is the scan period.
	DefaultInterval = 15 * time.Minute
)

// Window is the closed interval of session start times eligible for a
// reminder at a given scan instant.
type Window struct {
	From time.Time
	To   time.Time
}

// WindowAt computes the eligibility window for a tick running at now:
// [now + lead - early, now + lead + late].
func WindowAt(now time.Time) Window {
	target := now.Add(TargetLead)
	return Window{
		From: target.Add(-EarlyTolerance),
		To:   target.Add(LateTolerance),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}
