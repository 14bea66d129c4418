package clientpkg

import (
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ===============================
// Package Accountant
// ===============================

const (
	// PackageSize is how many sessions an administrative "add package" grants.
	PackageSize = 8

	// DefaultPackageDays is the expiry horizon when the session does not
	// define its own package duration.
	DefaultPackageDays = 90
)

// OnPackageBooking applies the state transition for a package-flagged
// booking: one more active session, expiry pushed to now plus the package
// duration ("extend on use": the expiry is reset forward, not accumulated).
func OnPackageBooking(c *models.Client, packageDurationDays int, now time.Time) {
	if packageDurationDays <= 0 {
		packageDurationDays = DefaultPackageDays
	}
	c.ActiveSessions++
	expiry := now.AddDate(0, 0, packageDurationDays)
	c.PackageExpiry = &expiry
}

// OnPackageCancellation gives one session back. The counter floors at zero;
// a decrement at zero is a no-op.
func OnPackageCancellation(c *models.Client) {
	if c.ActiveSessions > 0 {
		c.ActiveSessions--
	}
}

// AdminAddPackage grants a full package: +8 sessions, expiry now + 90 days.
func AdminAddPackage(c *models.Client, now time.Time) {
	c.ActiveSessions += PackageSize
	expiry := now.AddDate(0, 0, DefaultPackageDays)
	c.PackageExpiry = &expiry
}

// AdminResetPackage clears the package state. Idempotent.
func AdminResetPackage(c *models.Client) {
	c.ActiveSessions = 0
	c.PackageExpiry = nil
}

// HasActivePackage reports whether the client currently holds a usable
// package: sessions remaining, expiry set, and now strictly before expiry.
func HasActivePackage(c *models.Client, now time.Time) bool {
	return c.ActiveSessions > 0 &&
		c.PackageExpiry != nil &&
		now.Before(*c.PackageExpiry)
}
