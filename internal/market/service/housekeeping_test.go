package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingClearsOnlyExpiredTokens(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	signupAccount(t, st, "stale@example.com")
	signupAccount(t, st, "fresh@example.com")

	stale, err := st.Accounts().GetAccountByEmail(ctx, "stale@example.com")
	require.NoError(t, err)
	fresh, err := st.Accounts().GetAccountByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)

	require.NoError(t, st.Accounts().SetResetToken(ctx, stale.ID, "stale-hash", now.Add(-time.Hour)))
	require.NoError(t, st.Accounts().SetResetToken(ctx, fresh.ID, "fresh-hash", now.Add(time.Hour)))

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.cleanup()

	staleAfter, err := st.Accounts().GetAccountByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Nil(t, staleAfter.Reset)

	freshAfter, err := st.Accounts().GetAccountByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, freshAfter.Reset)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.Start()
	svc.Stop() // must not hang or panic
}
