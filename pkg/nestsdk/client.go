package nestsdk

import (
	"context"
	"net/http"
	"time"
)

// Client talks to the public, unauthenticated endpoints and creates
// authenticated Sessions out of sign-in responses.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the service at baseURL
// (e.g., "https://api.toynest.example").
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Signup creates a new local account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates with email and password and returns an authenticated
// Session on success.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signin", SignInRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSessionFromToken(out.Token, out.Account), nil
}

// ForgotPassword asks the service to mail a reset link to the address.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/forgot-password", ForgotPasswordRequest{Email: email})
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword consumes a reset token from a mailed link and installs the
// new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/reset-password/"+token, ResetPasswordRequest{Password: newPassword})
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetListing fetches a single listing; listings are publicly readable.
func (c *Client) GetListing(ctx context.Context, id string) (*Listing, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/toys/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out Listing
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListListings returns listings newest first; category "" means all.
func (c *Client) ListListings(ctx context.Context, category string) ([]Listing, error) {
	path := "/v1/toys"
	if category != "" {
		path += "?category=" + category
	}
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out ListingsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

// GetCategories returns the accepted category and condition values.
func (c *Client) GetCategories(ctx context.Context) (*CategoriesResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/toys/categories", nil)
	if err != nil {
		return nil, err
	}

	var out CategoriesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks the liveness probe endpoint.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks the readiness probe endpoint.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
