package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestAccount() domain.Account {
	return domain.Account{
		ID:           idx.New().String(),
		Email:        idx.New().String() + "@example.com",
		FirstName:    "Robin",
		LastName:     "Chen",
		ZipCode:      "2000",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
}

func TestAccountCreateAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := newTestAccount()
	a.Nickname = "robin-c"
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	got, err := st.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Email, got.Email)
	require.Equal(t, "Robin", got.FirstName)
	require.Equal(t, "robin-c", got.Nickname)
	require.Nil(t, got.Reset)
	require.False(t, got.CreatedAt.IsZero())

	byEmail, err := st.Accounts().GetAccountByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, a.ID, byEmail.ID)

	_, err = st.Accounts().GetAccountByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAccountDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	dup := newTestAccount()
	dup.Email = a.Email
	err := st.Accounts().CreateAccount(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestAccountDuplicateNickname(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := newTestAccount()
	a.Nickname = "taken"
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	dup := newTestAccount()
	dup.Nickname = "taken"
	require.ErrorIs(t, st.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)

	// Empty nicknames are stored as NULL, so two of them don't collide.
	b := newTestAccount()
	c := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, b))
	require.NoError(t, st.Accounts().CreateAccount(ctx, c))
}

func TestAccountFederatedLookupAndLink(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	_, err := st.Accounts().GetAccountByFederatedID(ctx, "google-sub-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Accounts().LinkFederatedID(ctx, a.ID, "google-sub-1"))

	got, err := st.Accounts().GetAccountByFederatedID(ctx, "google-sub-1")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.True(t, got.IsFederated())

	// Same provider subject cannot be linked to a second account.
	b := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, b))
	require.ErrorIs(t, st.Accounts().LinkFederatedID(ctx, b.ID, "google-sub-1"), store.ErrAlreadyExists)
}

func TestResetTokenLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	a := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	hash := "fingerprint-1"
	require.NoError(t, st.Accounts().SetResetToken(ctx, a.ID, hash, now.Add(time.Hour)))

	got, err := st.Accounts().GetAccountByActiveResetToken(ctx, hash, now)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.NotNil(t, got.Reset)
	require.Equal(t, hash, got.Reset.TokenHash)

	// Consumption replaces the password and clears the pair.
	require.NoError(t, st.Accounts().ConsumeResetToken(ctx, hash, "new-hash", now))

	after, err := st.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", after.PasswordHash)
	require.Nil(t, after.Reset)

	// Second consumption of the same token fails.
	require.ErrorIs(t, st.Accounts().ConsumeResetToken(ctx, hash, "other", now), store.ErrNotFound)
}

func TestResetTokenExpiry(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	a := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))
	require.NoError(t, st.Accounts().SetResetToken(ctx, a.ID, "old", now.Add(-time.Minute)))

	_, err := st.Accounts().GetAccountByActiveResetToken(ctx, "old", now)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Accounts().ConsumeResetToken(ctx, "old", "x", now), store.ErrNotFound)

	// Re-request overwrites the expired pair in place.
	require.NoError(t, st.Accounts().SetResetToken(ctx, a.ID, "fresh", now.Add(time.Hour)))
	got, err := st.Accounts().GetAccountByActiveResetToken(ctx, "fresh", now)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestClearExpiredResetTokens(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := newTestAccount()
	active := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, expired))
	require.NoError(t, st.Accounts().CreateAccount(ctx, active))

	require.NoError(t, st.Accounts().SetResetToken(ctx, expired.ID, "dead", now.Add(-time.Hour)))
	require.NoError(t, st.Accounts().SetResetToken(ctx, active.ID, "live", now.Add(time.Hour)))

	n, err := st.Accounts().ClearExpiredResetTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// Only the expired pair was cleared.
	gotExpired, err := st.Accounts().GetAccountByID(ctx, expired.ID)
	require.NoError(t, err)
	require.Nil(t, gotExpired.Reset)

	gotActive, err := st.Accounts().GetAccountByActiveResetToken(ctx, "live", now)
	require.NoError(t, err)
	require.Equal(t, active.ID, gotActive.ID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := newTestAccount()
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, a); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	_, err = st.Accounts().GetAccountByID(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
