package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toynest/toynest/internal/market/store"
)

func newListingFixture(t *testing.T) (*ListingService, store.Store, string) {
	t.Helper()

	st := newTestStore(t)
	signupAccount(t, st, "owner@example.com")
	owner, err := st.Accounts().GetAccountByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	return &ListingService{Store: st}, st, owner.ID
}

func validParams() ListingParams {
	return ListingParams{
		Title:      "Marble run",
		Category:   "building-sets",
		Condition:  "like-new",
		PriceCents: 2500,
	}
}

func TestListingCreateAndGet(t *testing.T) {
	svc, _, ownerID := newListingFixture(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, ownerID, validParams())
	require.NoError(t, err)
	require.Equal(t, ownerID, l.OwnerID)
	require.Equal(t, "Marble run", l.Title)

	got, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.ID)
}

func TestListingValidation(t *testing.T) {
	svc, _, ownerID := newListingFixture(t)
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		p := validParams()
		p.Title = "   "
		_, err := svc.Create(ctx, ownerID, p)
		require.ErrorIs(t, err, ErrInvalidListing)
	})

	t.Run("unknown category", func(t *testing.T) {
		p := validParams()
		p.Category = "spaceships"
		_, err := svc.Create(ctx, ownerID, p)
		require.ErrorIs(t, err, ErrInvalidListing)
	})

	t.Run("unknown condition", func(t *testing.T) {
		p := validParams()
		p.Condition = "mint"
		_, err := svc.Create(ctx, ownerID, p)
		require.ErrorIs(t, err, ErrInvalidListing)
	})

	t.Run("negative price", func(t *testing.T) {
		p := validParams()
		p.PriceCents = -1
		_, err := svc.Create(ctx, ownerID, p)
		require.ErrorIs(t, err, ErrInvalidListing)
	})

	t.Run("list with unknown category filter", func(t *testing.T) {
		_, err := svc.List(ctx, "spaceships")
		require.ErrorIs(t, err, ErrInvalidListing)
	})
}

func TestListingOwnershipEnforced(t *testing.T) {
	svc, st, ownerID := newListingFixture(t)
	ctx := context.Background()

	signupAccount(t, st, "intruder@example.com")
	intruder, err := st.Accounts().GetAccountByEmail(ctx, "intruder@example.com")
	require.NoError(t, err)

	l, err := svc.Create(ctx, ownerID, validParams())
	require.NoError(t, err)

	p := validParams()
	p.Title = "Hijacked"
	_, err = svc.Update(ctx, intruder.ID, l.ID, p)
	require.ErrorIs(t, err, ErrNotOwner)

	require.ErrorIs(t, svc.Delete(ctx, intruder.ID, l.ID), ErrNotOwner)

	// The owner can still do both.
	updated, err := svc.Update(ctx, ownerID, l.ID, p)
	require.NoError(t, err)
	require.Equal(t, "Hijacked", updated.Title)
	require.NoError(t, svc.Delete(ctx, ownerID, l.ID))

	_, err = svc.Get(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
