package notify

import "context"

// Notifier delivers an already-rendered message to a destination address and
// returns a delivery identifier. Implementations own the transport; callers
// own retry and idempotency bookkeeping.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// Message is a queued outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
}
