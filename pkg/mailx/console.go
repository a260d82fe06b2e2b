package mailx

import (
	"context"
	"log/slog"
)

// ConsoleSender logs mail instead of delivering it. Used in development and
// in tests that don't care about delivery. The logged body carries whatever
// secrets the mail does (password-reset links included), so this sender must
// never back a production configuration.
type ConsoleSender struct {
	Logger *slog.Logger
}

func (c *ConsoleSender) Send(_ context.Context, msg Message) error {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Info("email (console sender, not delivered)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
