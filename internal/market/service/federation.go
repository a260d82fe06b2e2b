package service

import (
	"context"
	"errors"
	"strings"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/idx"
	"github.com/toynest/toynest/pkg/slogx"
)

// FederationService turns a verified provider assertion into a signed-in
// account, creating or linking accounts as needed.
type FederationService struct {
	Store  store.Store
	Tokens *TokenIssuer
}

// Link resolves an assertion to an account and issues an access token.
//
// Resolution order:
//  1. An account already holding the provider subject id signs straight in.
//  2. An account with the same email gets the subject id linked onto it,
//     so an existing local account absorbs the federated identity instead
//     of spawning a duplicate.
//  3. Otherwise a new password-less account is created.
func (s *FederationService) Link(ctx context.Context, assertion domain.FederatedAssertion) (SignInResult, error) {
	l := slogx.FromContext(ctx)
	email := NormalizeEmail(assertion.Email)

	account, err := s.Store.Accounts().GetAccountByFederatedID(ctx, assertion.ProviderID)
	switch {
	case err == nil:
		// Known federated identity.

	case errors.Is(err, store.ErrNotFound):
		account, err = s.linkOrCreate(ctx, assertion, email)
		if err != nil {
			return SignInResult{}, err
		}

	default:
		return SignInResult{}, err
	}

	token, err := s.Tokens.Issue(account)
	if err != nil {
		return SignInResult{}, err
	}

	l.Info("federated sign-in succeeded", "account_id", account.ID)
	return SignInResult{Account: account, AccessToken: token}, nil
}

func (s *FederationService) linkOrCreate(ctx context.Context, assertion domain.FederatedAssertion, email string) (domain.Account, error) {
	existing, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.Store.Accounts().LinkFederatedID(ctx, existing.ID, assertion.ProviderID); err != nil {
			return domain.Account{}, err
		}
		return s.Store.Accounts().GetAccountByID(ctx, existing.ID)

	case errors.Is(err, store.ErrNotFound):
		first, last := splitDisplayName(assertion.DisplayName)
		account := domain.Account{
			ID:          idx.New().String(),
			Email:       email,
			FirstName:   first,
			LastName:    last,
			FederatedID: assertion.ProviderID,
		}
		if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
			// Lost a race against a concurrent callback for the same
			// identity. The winner's account is the one to use.
			if errors.Is(err, store.ErrAlreadyExists) {
				return s.Store.Accounts().GetAccountByFederatedID(ctx, assertion.ProviderID)
			}
			return domain.Account{}, err
		}
		return s.Store.Accounts().GetAccountByID(ctx, account.ID)

	default:
		return domain.Account{}, err
	}
}

// splitDisplayName does a best-effort split of a provider display name into
// first/last. Providers don't guarantee structure here.
func splitDisplayName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.Fields(name)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
