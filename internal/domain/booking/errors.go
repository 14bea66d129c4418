package booking

// Business error codes returned by the booking engine. Handlers map these to
// HTTP statuses; they are never retried automatically.
const (
	CodeCapacityExceeded         = "capacity_exceeded"
	CodeSessionUnavailable       = "session_unavailable"
	CodeInvalidGroupSize         = "invalid_group_size"
	CodeCancellationWindowClosed = "cancellation_window_closed"
	CodeNotFound                 = "not_found"
	CodeDispatchFailed           = "dispatch_failed"
	CodeInvalidTimeOfDay         = "invalid_time_of_day"
	CodeSlotAlreadyExists        = "slot_already_exists"
)
