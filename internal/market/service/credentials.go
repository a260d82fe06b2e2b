package service

import (
	"context"
	"errors"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/slogx"
)

// CredentialService verifies local email+password credentials.
type CredentialService struct {
	Store  store.Store
	Tokens *TokenIssuer
}

// SignInResult is what a successful credential check produces.
type SignInResult struct {
	Account     domain.Account
	AccessToken string
}

// SignIn verifies the password and issues an access token. A federated-only
// account is reported as such before any password comparison happens; there
// is no local hash to compare against, and the caller needs to know to use
// the provider flow.
func (s *CredentialService) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	l := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SignInResult{}, ErrInvalidCredentials
		}
		return SignInResult{}, err
	}

	if account.IsFederated() {
		return SignInResult{}, ErrFederatedAccountOnly
	}
	if !account.HasPassword() {
		return SignInResult{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Warn("sign-in failed", "account_id", account.ID)
			return SignInResult{}, ErrInvalidCredentials
		}
		return SignInResult{}, err
	}

	token, err := s.Tokens.Issue(account)
	if err != nil {
		return SignInResult{}, err
	}

	l.Info("sign-in succeeded", "account_id", account.ID)
	return SignInResult{Account: account, AccessToken: token}, nil
}
