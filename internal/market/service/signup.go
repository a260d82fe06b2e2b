package service

import (
	"context"
	"errors"
	"strings"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/idx"
	"github.com/toynest/toynest/pkg/slogx"
)

type SignupService struct {
	Store store.Store
}

// SignupParams is what the signup endpoint collects.
type SignupParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Nickname  string
	ZipCode   string
}

// Signup creates a local account. The email conflict check distinguishes
// federated accounts so the caller can steer the user to the provider flow
// instead of a dead-end "email in use".
func (s *SignupService) Signup(ctx context.Context, p SignupParams) (domain.Account, error) {
	l := slogx.FromContext(ctx)
	email := NormalizeEmail(p.Email)

	if existing, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err == nil {
		if existing.IsFederated() {
			return domain.Account{}, ErrFederatedAccountExists
		}
		return domain.Account{}, ErrEmailInUse
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Nickname:     strings.TrimSpace(p.Nickname),
		ZipCode:      strings.TrimSpace(p.ZipCode),
		PasswordHash: hash,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		// The UNIQUE indexes catch races the pre-check missed. A nickname
		// collision is the only other unique column a local signup can hit.
		if errors.Is(err, store.ErrAlreadyExists) {
			if account.Nickname != "" {
				if _, nickErr := s.Store.Accounts().GetAccountByEmail(ctx, email); errors.Is(nickErr, store.ErrNotFound) {
					return domain.Account{}, ErrNicknameInUse
				}
			}
			return domain.Account{}, ErrEmailInUse
		}
		return domain.Account{}, err
	}

	created, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}

	l.Info("account created", "account_id", created.ID)
	return created, nil
}

// NormalizeEmail lowercases and trims an address so lookups and unique
// indexes agree on what "the same email" means.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
