package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/idx"
)

func newTestListing(ownerID string) domain.Listing {
	return domain.Listing{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Title:       "Wooden train set",
		Description: "Complete with tracks and bridge",
		Category:    "vehicles",
		Condition:   "good",
		PriceCents:  1500,
	}
}

func TestListingCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	owner := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, owner))

	l := newTestListing(owner.ID)
	require.NoError(t, st.Listings().CreateListing(ctx, l))

	got, err := st.Listings().GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Wooden train set", got.Title)
	require.Equal(t, owner.ID, got.OwnerID)
	require.EqualValues(t, 1500, got.PriceCents)

	got.Title = "Wooden train set (updated)"
	got.PriceCents = 1200
	require.NoError(t, st.Listings().UpdateListing(ctx, got))

	after, err := st.Listings().GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Wooden train set (updated)", after.Title)
	require.EqualValues(t, 1200, after.PriceCents)

	require.NoError(t, st.Listings().DeleteListing(ctx, l.ID))
	_, err = st.Listings().GetListingByID(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListingCategoryFilter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	owner := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, owner))

	plush := newTestListing(owner.ID)
	plush.Category = "plush"
	vehicles := newTestListing(owner.ID)

	require.NoError(t, st.Listings().CreateListing(ctx, plush))
	require.NoError(t, st.Listings().CreateListing(ctx, vehicles))

	all, err := st.Listings().ListListings(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyPlush, err := st.Listings().ListListings(ctx, "plush")
	require.NoError(t, err)
	require.Len(t, onlyPlush, 1)
	require.Equal(t, plush.ID, onlyPlush[0].ID)

	none, err := st.Listings().ListListings(ctx, "dolls")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListingCascadeOnAccountDelete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	owner := newTestAccount()
	require.NoError(t, st.Accounts().CreateAccount(ctx, owner))
	l := newTestListing(owner.ID)
	require.NoError(t, st.Listings().CreateListing(ctx, l))

	// Accounts are never hard-deleted through the store interface; delete
	// directly to exercise the schema's ON DELETE CASCADE.
	_, err := st.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, owner.ID)
	require.NoError(t, err)

	_, err = st.Listings().GetListingByID(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
