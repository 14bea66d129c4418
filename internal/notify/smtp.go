package notify

import (
	"context"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// Send delivers one message. gomail has no context support, so the dial+send
// runs in a goroutine and the context cuts the wait; the abandoned attempt
// finishes (or fails) in the background.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) (string, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", err
		}
	}

	return uuid.NewString(), nil
}

var _ Notifier = (*SMTPMailer)(nil)
