package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/toynest/toynest/pkg/cryptox"
)

var resetLinkRe = regexp.MustCompile(`/reset-password/([0-9a-f]{40})`)

func tokenFromMail(t *testing.T, body string) string {
	t.Helper()
	m := resetLinkRe.FindStringSubmatch(body)
	require.Len(t, m, 2, "mail body should carry a reset link: %s", body)
	return m[1]
}

func TestRequestResetIssuesTokenAndMails(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{
		Store:   st,
		Mailer:  sender,
		BaseURL: "https://toynest.example",
	}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")

	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	require.Len(t, sender.sent, 1)
	require.Equal(t, "avery@example.com", sender.sent[0].To)

	token := tokenFromMail(t, sender.sent[0].Body)

	// Only the fingerprint is persisted, never the raw token.
	account, err := st.Accounts().GetAccountByEmail(ctx, "avery@example.com")
	require.NoError(t, err)
	require.NotNil(t, account.Reset)
	require.Equal(t, cryptox.FingerprintToken(token), account.Reset.TokenHash)
	require.NotEqual(t, token, account.Reset.TokenHash)
	require.WithinDuration(t, time.Now().Add(DefaultResetTokenTTL), account.Reset.ExpiresAt, time.Minute)
}

func TestRequestResetUnknownEmail(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}

	err := svc.RequestReset(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrAccountNotFound)
	require.Empty(t, sender.sent)
}

func TestRequestResetDeliveryFailureKeepsToken(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{fail: true}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")

	err := svc.RequestReset(ctx, "avery@example.com")
	require.ErrorIs(t, err, ErrDeliveryFailed)

	// The fingerprint was persisted before the send, and the failure does
	// not roll it back.
	account, err := st.Accounts().GetAccountByEmail(ctx, "avery@example.com")
	require.NoError(t, err)
	require.NotNil(t, account.Reset)
}

func TestRequestResetReplacesPreviousToken(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")

	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	require.Len(t, sender.sent, 2)

	first := tokenFromMail(t, sender.sent[0].Body)
	second := tokenFromMail(t, sender.sent[1].Body)
	require.NotEqual(t, first, second)

	// The first token was superseded.
	require.ErrorIs(t, svc.ResetPassword(ctx, first, "brand new passphrase"), ErrInvalidResetToken)
	require.NoError(t, svc.ResetPassword(ctx, second, "brand new passphrase"))
}

func TestResetPasswordConsumesToken(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}
	creds := &CredentialService{Store: st, Tokens: newTestIssuer(t)}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")
	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	token := tokenFromMail(t, sender.sent[0].Body)

	require.NoError(t, svc.ResetPassword(ctx, token, "brand new passphrase"))

	// New password works, old one doesn't.
	_, err := creds.SignIn(ctx, "avery@example.com", "brand new passphrase")
	require.NoError(t, err)
	_, err = creds.SignIn(ctx, "avery@example.com", "correct horse battery staple")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Pair cleared; token single-use.
	account, err := st.Accounts().GetAccountByEmail(ctx, "avery@example.com")
	require.NoError(t, err)
	require.Nil(t, account.Reset)
	require.ErrorIs(t, svc.ResetPassword(ctx, token, "yet another passphrase"), ErrInvalidResetToken)
}

func TestResetPasswordConcurrentSubmissions(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")
	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	token := tokenFromMail(t, sender.sent[0].Body)

	// Race the same token from several goroutines. The store's conditional
	// UPDATE clears the fingerprint, so only one submission can match it.
	const submissions = 8
	errs := make([]error, submissions)
	var wg sync.WaitGroup
	for i := range submissions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = svc.ResetPassword(ctx, token, fmt.Sprintf("racing passphrase %d", i))
		}()
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, ErrInvalidResetToken)
	}
	require.Equal(t, 1, won, "exactly one submission should consume the token")

	// Pair cleared for everyone, including the winner.
	account, err := st.Accounts().GetAccountByEmail(ctx, "avery@example.com")
	require.NoError(t, err)
	require.Nil(t, account.Reset)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	st := newTestStore(t)
	sender := &recordingSender{}
	svc := &PasswordResetService{Store: st, Mailer: sender, BaseURL: "https://toynest.example"}
	ctx := context.Background()

	signupAccount(t, st, "avery@example.com")
	require.NoError(t, svc.RequestReset(ctx, "avery@example.com"))
	token := tokenFromMail(t, sender.sent[0].Body)

	// Backdate the stored expiry so the token is already stale.
	account, err := st.Accounts().GetAccountByEmail(ctx, "avery@example.com")
	require.NoError(t, err)
	require.NoError(t, st.Accounts().SetResetToken(ctx, account.ID,
		cryptox.FingerprintToken(token), time.Now().UTC().Add(-time.Minute)))

	require.ErrorIs(t, svc.ResetPassword(ctx, token, "new passphrase"), ErrInvalidResetToken)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	st := newTestStore(t)
	svc := &PasswordResetService{Store: st, Mailer: &recordingSender{}, BaseURL: "https://toynest.example"}

	err := svc.ResetPassword(context.Background(), "00112233445566778899aabbccddeeff00112233", "new passphrase")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}
