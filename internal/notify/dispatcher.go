package notify

import (
	"context"
	"log"
)

// Dispatcher sends booking confirmation/cancellation mails off the request
// path. Delivery is best-effort: a failed or dropped notification is logged
// and never fails the booking transaction that triggered it.
type Dispatcher struct {
	retrier *Retrier
	queue   chan Message
}

func NewDispatcher(retrier *Retrier) *Dispatcher {
	d := &Dispatcher{
		retrier: retrier,
		queue:   make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if _, err := d.retrier.SendWithRetry(
			context.Background(),
			msg.To,
			msg.Subject,
			msg.Body,
			0,
		); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	if msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
		// queued
	default:
		// queue full → drop rather than block a booking request
		log.Println("notify queue full, dropping message to", msg.To)
	}
}
