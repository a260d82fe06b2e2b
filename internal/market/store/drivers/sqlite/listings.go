package sqlite

import (
	"context"
	"time"

	"github.com/toynest/toynest/internal/market/domain"
)

type listingsRepo struct {
	db dbtx
}

const listingColumns = `id, owner_id, title, description, category, condition,
	price_cents, created_at, updated_at`

func scanListing(scan func(...any) error) (domain.Listing, error) {
	var l domain.Listing
	err := scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Category,
		&l.Condition, &l.PriceCents, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *listingsRepo) GetListingByID(ctx context.Context, id string) (domain.Listing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)
	l, err := scanListing(row.Scan)
	if err != nil {
		return domain.Listing{}, mapNotFound(err)
	}
	return l, nil
}

func (r *listingsRepo) ListListings(ctx context.Context, category string) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *listingsRepo) CreateListing(ctx context.Context, l domain.Listing) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (
			id, owner_id, title, description, category, condition,
			price_cents, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.OwnerID, l.Title, l.Description, l.Category, l.Condition,
		l.PriceCents, now, now,
	)
	return mapConstraint(err)
}

func (r *listingsRepo) UpdateListing(ctx context.Context, l domain.Listing) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE listings
		SET title = ?, description = ?, category = ?, condition = ?,
		    price_cents = ?, updated_at = ?
		WHERE id = ?`,
		l.Title, l.Description, l.Category, l.Condition, l.PriceCents,
		time.Now().UTC(), l.ID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *listingsRepo) DeleteListing(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
