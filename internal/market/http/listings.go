package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
	"github.com/toynest/toynest/pkg/slogx"
)

type ListingsHandler struct {
	ListingService *service.ListingService
}

func decodeListingRequest(w http.ResponseWriter, r *http.Request) (service.ListingParams, bool) {
	var req nestsdk.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid request body")
		return service.ListingParams{}, false
	}
	return service.ListingParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		PriceCents:  req.PriceCents,
	}, true
}

func (h *ListingsHandler) writeListingError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())
	switch {
	case errors.Is(err, service.ErrInvalidListing):
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, nestsdk.ErrorCodeNotOwner, "Listing belongs to another account")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, nestsdk.ErrorCodeNotFound, "Listing not found")
	default:
		log.Error("listing operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Listing operation failed")
	}
}

// HandleCreate godoc
//
//	@Summary		Create Listing Endpoint
//	@Description	File a new toy listing owned by the authenticated account
//	@Tags			Listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		nestsdk.ListingRequest	true	"Listing fields"
//	@Success		201		{object}	nestsdk.Listing			"listing"
//	@Failure		400		{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		401		"Missing or invalid bearer token"
//	@Security		BearerAuth
//	@Router			/v1/toys [post].
func (h *ListingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeListingRequest(w, r)
	if !ok {
		return
	}

	listing, err := h.ListingService.Create(r.Context(), httpx.AccountIDFromCtx(r.Context()), params)
	if err != nil {
		h.writeListingError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, listingView(listing))
}

// HandleList godoc
//
//	@Summary		List Listings Endpoint
//	@Description	Return listings newest first, optionally filtered by category
//	@Tags			Listings
//	@Produce		json
//	@Param			category	query		string						false	"Category filter"
//	@Success		200			{object}	nestsdk.ListingsResponse	"listings"
//	@Failure		400			{object}	nestsdk.ErrorResponse		"error, message"
//	@Router			/v1/toys [get].
func (h *ListingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ListingService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeListingError(w, r, err)
		return
	}

	out := nestsdk.ListingsResponse{Listings: make([]nestsdk.Listing, 0, len(listings))}
	for _, l := range listings {
		out.Listings = append(out.Listings, listingView(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Listing Endpoint
//	@Description	Return a single listing by id
//	@Tags			Listings
//	@Produce		json
//	@Param			id	path		string					true	"Listing id"
//	@Success		200	{object}	nestsdk.Listing			"listing"
//	@Failure		404	{object}	nestsdk.ErrorResponse	"error, message"
//	@Router			/v1/toys/{id} [get].
func (h *ListingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	listing, err := h.ListingService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeListingError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listingView(listing))
}

// HandleUpdate godoc
//
//	@Summary		Update Listing Endpoint
//	@Description	Replace the mutable fields of a listing the authenticated account owns
//	@Tags			Listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Listing id"
//	@Param			request	body		nestsdk.ListingRequest	true	"Listing fields"
//	@Success		200		{object}	nestsdk.Listing			"listing"
//	@Failure		403		{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		404		{object}	nestsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/toys/{id} [put].
func (h *ListingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeListingRequest(w, r)
	if !ok {
		return
	}

	listing, err := h.ListingService.Update(r.Context(), httpx.AccountIDFromCtx(r.Context()), r.PathValue("id"), params)
	if err != nil {
		h.writeListingError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listingView(listing))
}

// HandleDelete godoc
//
//	@Summary		Delete Listing Endpoint
//	@Description	Remove a listing the authenticated account owns
//	@Tags			Listings
//	@Param			id	path	string	true	"Listing id"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		404	{object}	nestsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/toys/{id} [delete].
func (h *ListingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ListingService.Delete(r.Context(), httpx.AccountIDFromCtx(r.Context()), r.PathValue("id")); err != nil {
		h.writeListingError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCategories godoc
//
//	@Summary		Listing Categories Endpoint
//	@Description	Enumerate the accepted category and condition values
//	@Tags			Listings
//	@Produce		json
//	@Success		200	{object}	nestsdk.CategoriesResponse	"categories, conditions"
//	@Router			/v1/toys/categories [get].
func (h *ListingsHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, nestsdk.CategoriesResponse{
		Categories: domain.ListingCategories,
		Conditions: domain.ListingConditions,
	})
}
