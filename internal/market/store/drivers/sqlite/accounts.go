package sqlite

import (
	"context"
	"time"

	"github.com/toynest/toynest/internal/market/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, email, first_name, last_name, nickname, zip_code,
	password_hash, federated_id, reset_token_hash, reset_token_expires_at,
	created_at, updated_at`

func (r *accountsRepo) getAccount(ctx context.Context, where string, args ...any) (domain.Account, error) {
	var row accountRow
	err := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE `+where, args...,
	).Scan(
		&row.ID, &row.Email, &row.FirstName, &row.LastName, &row.Nickname,
		&row.ZipCode, &row.PasswordHash, &row.FederatedID,
		&row.ResetTokenHash, &row.ResetTokenExpiresAt,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getAccount(ctx, `id = ?`, id)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getAccount(ctx, `email = ?`, email)
}

func (r *accountsRepo) GetAccountByFederatedID(ctx context.Context, federatedID string) (domain.Account, error) {
	return r.getAccount(ctx, `federated_id = ?`, federatedID)
}

func (r *accountsRepo) GetAccountByActiveResetToken(ctx context.Context, tokenHash string, now time.Time) (domain.Account, error) {
	return r.getAccount(ctx, `reset_token_hash = ? AND reset_token_expires_at > ?`, tokenHash, now.UTC())
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			id, email, first_name, last_name, nickname, zip_code,
			password_hash, federated_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.FirstName, a.LastName,
		mapStringNull(a.Nickname), mapStringNull(a.ZipCode),
		mapStringNull(a.PasswordHash), mapStringNull(a.FederatedID),
		now, now,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, accountID string, newHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *accountsRepo) LinkFederatedID(ctx context.Context, accountID string, federatedID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET federated_id = ?, updated_at = ? WHERE id = ?`,
		federatedID, time.Now().UTC(), accountID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowChanged(res)
}

func (r *accountsRepo) SetResetToken(ctx context.Context, accountID string, tokenHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET reset_token_hash = ?, reset_token_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		tokenHash, expiresAt.UTC(), time.Now().UTC(), accountID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowChanged(res)
}

// ConsumeResetToken is a single conditional UPDATE so lookup and consumption
// cannot race: only the request holding a still-active token flips the row.
func (r *accountsRepo) ConsumeResetToken(ctx context.Context, tokenHash string, newPasswordHash string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET password_hash = ?, reset_token_hash = NULL,
		    reset_token_expires_at = NULL, updated_at = ?
		WHERE reset_token_hash = ? AND reset_token_expires_at > ?`,
		newPasswordHash, now.UTC(), tokenHash, now.UTC(),
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *accountsRepo) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = ?
		WHERE reset_token_expires_at IS NOT NULL AND reset_token_expires_at <= ?`,
		now.UTC(), now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
