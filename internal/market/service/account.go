package service

import (
	"context"
	"errors"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
)

type AccountService struct {
	Store store.Store
}

// GetAccountByID fetches an account by id.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}
