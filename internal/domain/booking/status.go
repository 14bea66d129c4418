package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"

	// Cancellation hard-deletes the booking row; StatusCancelled only exists
	// transiently during the deletion flow (and in notification payloads).
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}
