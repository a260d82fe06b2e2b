package store

import (
	"context"
	"errors"
	"time"

	"github.com/toynest/toynest/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Accounts() Accounts
	Listings() Listings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during sign-in and signup conflict checks.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetAccountByFederatedID looks up an account by its provider subject id.
	GetAccountByFederatedID(ctx context.Context, federatedID string) (domain.Account, error)

	// GetAccountByActiveResetToken returns the account holding the given
	// reset-token fingerprint, provided the token expires after now.
	GetAccountByActiveResetToken(ctx context.Context, tokenHash string, now time.Time) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	// Returns ErrAlreadyExists when email, nickname or federated id collide.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID string, newHash string) error

	// LinkFederatedID attaches a provider subject id to an existing account.
	LinkFederatedID(ctx context.Context, accountID string, federatedID string) error

	// SetResetToken stores the reset fingerprint and expiry as a pair,
	// replacing any previous one.
	SetResetToken(ctx context.Context, accountID string, tokenHash string, expiresAt time.Time) error

	// ConsumeResetToken atomically sets the new password hash and clears the
	// reset pair, but only if tokenHash is still active at now. Returns
	// ErrNotFound when the token is unknown, already used, or expired.
	ConsumeResetToken(ctx context.Context, tokenHash string, newPasswordHash string, now time.Time) error

	// ClearExpiredResetTokens is housekeeping; returns the number cleared.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Listings interface {
	// GetListingByID returns a listing by id.
	GetListingByID(ctx context.Context, id string) (domain.Listing, error)

	// ListListings returns listings newest first, optionally filtered by
	// category ("" means all).
	ListListings(ctx context.Context, category string) ([]domain.Listing, error)

	// CreateListing inserts a new listing (id is ULID).
	CreateListing(ctx context.Context, l domain.Listing) error

	// UpdateListing replaces the mutable fields and bumps updated_at.
	UpdateListing(ctx context.Context, l domain.Listing) error

	// DeleteListing removes a listing.
	DeleteListing(ctx context.Context, id string) error
}
