// Package mailx sends transactional email. The SMTP sender is the one used
// in production; the console sender exists for local development, where
// standing up an SMTP relay is more trouble than it's worth.
package mailx

import (
	"context"
	"fmt"
)

// Message is a single plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message to one recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError wraps a transport failure so callers can tell "we couldn't
// send the mail" apart from their own errors.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mailx: delivery to %s failed: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
