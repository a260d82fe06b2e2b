package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/idx"
)

func TestSignupCreatesAccount(t *testing.T) {
	st := newTestStore(t)
	svc := &SignupService{Store: st}
	ctx := context.Background()

	account, err := svc.Signup(ctx, SignupParams{
		Email:     "  Casey@Example.COM ",
		Password:  "a strong passphrase",
		FirstName: "Casey",
		LastName:  "Nguyen",
		Nickname:  "casey-n",
		ZipCode:   "4000",
	})
	require.NoError(t, err)

	require.Equal(t, "casey@example.com", account.Email) // normalized
	require.Equal(t, "casey-n", account.Nickname)
	require.NotEmpty(t, account.ID)
	require.True(t, account.HasPassword())
	require.False(t, account.IsFederated())

	// The stored hash verifies against the original password.
	require.NoError(t, cryptox.VerifyPassword("a strong passphrase", account.PasswordHash))
}

func TestSignupDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &SignupService{Store: st}
	ctx := context.Background()

	signupAccount(t, st, "taken@example.com")

	_, err := svc.Signup(ctx, SignupParams{
		Email:     "taken@example.com",
		Password:  "another passphrase",
		FirstName: "B",
		LastName:  "B",
	})
	require.ErrorIs(t, err, ErrEmailInUse)

	// Same address, different casing, still a conflict.
	_, err = svc.Signup(ctx, SignupParams{
		Email:     "TAKEN@example.com",
		Password:  "another passphrase",
		FirstName: "B",
		LastName:  "B",
	})
	require.ErrorIs(t, err, ErrEmailInUse)
}

func TestSignupAgainstFederatedAccount(t *testing.T) {
	st := newTestStore(t)
	svc := &SignupService{Store: st}
	ctx := context.Background()

	// Account created via the provider flow: no password, federated id set.
	require.NoError(t, st.Accounts().CreateAccount(ctx, domain.Account{
		ID:          idx.New().String(),
		Email:       "fed@example.com",
		FirstName:   "Fede",
		LastName:    "Rated",
		FederatedID: "google-sub-9",
	}))

	_, err := svc.Signup(ctx, SignupParams{
		Email:     "fed@example.com",
		Password:  "whatever passphrase",
		FirstName: "X",
		LastName:  "Y",
	})
	require.ErrorIs(t, err, ErrFederatedAccountExists)
}

func TestSignupDuplicateNickname(t *testing.T) {
	st := newTestStore(t)
	svc := &SignupService{Store: st}
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupParams{
		Email:     "one@example.com",
		Password:  "first passphrase",
		FirstName: "One",
		LastName:  "User",
		Nickname:  "shared-nick",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupParams{
		Email:     "two@example.com",
		Password:  "second passphrase",
		FirstName: "Two",
		LastName:  "User",
		Nickname:  "shared-nick",
	})
	require.ErrorIs(t, err, ErrNicknameInUse)
}
