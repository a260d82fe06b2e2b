package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/idx"
)

type ListingService struct {
	Store store.Store
}

// ListingParams carries the caller-editable listing fields.
type ListingParams struct {
	Title       string
	Description string
	Category    string
	Condition   string
	PriceCents  int64
}

func (p ListingParams) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalidListing)
	}
	if !domain.ValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidListing, p.Category)
	}
	if !domain.ValidCondition(p.Condition) {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidListing, p.Condition)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidListing)
	}
	return nil
}

// Create files a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID string, p ListingParams) (domain.Listing, error) {
	if err := p.validate(); err != nil {
		return domain.Listing{}, err
	}

	listing := domain.Listing{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(p.Title),
		Description: p.Description,
		Category:    p.Category,
		Condition:   p.Condition,
		PriceCents:  p.PriceCents,
	}
	if err := s.Store.Listings().CreateListing(ctx, listing); err != nil {
		return domain.Listing{}, err
	}
	return s.Store.Listings().GetListingByID(ctx, listing.ID)
}

// Get returns a single listing.
func (s *ListingService) Get(ctx context.Context, id string) (domain.Listing, error) {
	return s.Store.Listings().GetListingByID(ctx, id)
}

// List returns listings newest first, optionally filtered by category.
func (s *ListingService) List(ctx context.Context, category string) ([]domain.Listing, error) {
	if category != "" && !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidListing, category)
	}
	return s.Store.Listings().ListListings(ctx, category)
}

// Update replaces the mutable fields of a listing the caller owns.
func (s *ListingService) Update(ctx context.Context, callerID, id string, p ListingParams) (domain.Listing, error) {
	if err := p.validate(); err != nil {
		return domain.Listing{}, err
	}

	existing, err := s.Store.Listings().GetListingByID(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if existing.OwnerID != callerID {
		return domain.Listing{}, ErrNotOwner
	}

	existing.Title = strings.TrimSpace(p.Title)
	existing.Description = p.Description
	existing.Category = p.Category
	existing.Condition = p.Condition
	existing.PriceCents = p.PriceCents

	if err := s.Store.Listings().UpdateListing(ctx, existing); err != nil {
		return domain.Listing{}, err
	}
	return s.Store.Listings().GetListingByID(ctx, id)
}

// Delete removes a listing the caller owns.
func (s *ListingService) Delete(ctx context.Context, callerID, id string) error {
	existing, err := s.Store.Listings().GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return ErrNotOwner
	}
	return s.Store.Listings().DeleteListing(ctx, id)
}
