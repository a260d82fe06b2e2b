package nestsdk

import (
	"context"
	"net/http"
)

// Session performs authenticated operations with a bearer token obtained
// from SignIn (or the federation callback). Access tokens are short-lived
// and the service has no refresh grant; when a call starts failing with
// ErrorCodeInvalidToken, sign in again.
type Session struct {
	client  *Client
	token   string
	account Account
}

// NewSessionFromToken builds a Session around an existing access token,
// e.g. one carried over from a federation callback redirect.
func (c *Client) NewSessionFromToken(token string, account Account) *Session {
	return &Session{client: c, token: token, account: account}
}

// Token returns the raw access token the session authenticates with.
func (s *Session) Token() string { return s.token }

// Account returns the account snapshot captured at sign-in.
func (s *Session) Account() Account { return s.account }

// Me fetches the current account view from the service.
func (s *Session) Me(ctx context.Context) (*Account, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var out Account
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateListing files a new listing owned by the session's account.
func (s *Session) CreateListing(ctx context.Context, req ListingRequest) (*Listing, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/toys", req)
	if err != nil {
		return nil, err
	}

	var out Listing
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateListing replaces the mutable fields of a listing the session owns.
func (s *Session) UpdateListing(ctx context.Context, id string, req ListingRequest) (*Listing, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/v1/toys/"+id, req)
	if err != nil {
		return nil, err
	}

	var out Listing
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteListing removes a listing the session owns.
func (s *Session) DeleteListing(ctx context.Context, id string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/toys/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
