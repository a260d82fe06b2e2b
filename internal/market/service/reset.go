package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/mailx"
	"github.com/toynest/toynest/pkg/slogx"
)

// DefaultResetTokenTTL is how long a password-reset token stays valid.
const DefaultResetTokenTTL = time.Hour

// DefaultMailTimeout bounds how long a reset request waits on the relay.
const DefaultMailTimeout = 10 * time.Second

// PasswordResetService owns the reset-token lifecycle: minting, delivery,
// and consumption.
type PasswordResetService struct {
	Store  store.Store
	Mailer mailx.Sender

	// BaseURL is the public origin used to build reset links,
	// e.g. "https://toynest.example".
	BaseURL string

	TokenTTL    time.Duration
	MailTimeout time.Duration
}

// RequestReset mints a reset token for the account behind email, persists
// its fingerprint, and mails the raw token as a link. The fingerprint is
// stored before the mail goes out: a delivery failure leaves a usable
// credential behind, and retrying the request simply replaces it.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	token, err := cryptox.GenerateResetToken()
	if err != nil {
		return err
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	expiresAt := time.Now().UTC().Add(ttl)

	if err := s.Store.Accounts().SetResetToken(ctx, account.ID, cryptox.FingerprintToken(token), expiresAt); err != nil {
		return err
	}

	mailTimeout := s.MailTimeout
	if mailTimeout <= 0 {
		mailTimeout = DefaultMailTimeout
	}
	mailCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	msg := mailx.Message{
		To:      account.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Hi %s,\n\nA password reset was requested for your account. "+
				"Follow this link within the next hour to pick a new password:\n\n"+
				"%s/reset-password/%s\n\n"+
				"If you didn't ask for this, you can ignore this email.\n",
			account.FirstName, s.BaseURL, token,
		),
	}
	if err := s.Mailer.Send(mailCtx, msg); err != nil {
		// The stored fingerprint stays put. The user can retry the request
		// and the new token replaces this one.
		l.Error("reset mail delivery failed", "account_id", account.ID, "err", err)
		return ErrDeliveryFailed
	}

	l.Info("reset token issued", "account_id", account.ID, "expires_at", expiresAt)
	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// lookup and the consumption are a single conditional write in the store, so
// two concurrent requests with the same token can't both succeed.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	l := slogx.FromContext(ctx)

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.Store.Accounts().ConsumeResetToken(ctx, cryptox.FingerprintToken(token), newHash, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	l.Info("password reset completed")
	return nil
}
