package nestsdk

import "time"

// ============================================================================
// Error Response
// ============================================================================

// ErrorResponse is the error body every endpoint returns. Message is the
// human-readable text; Error is a stable machine-readable code.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error,omitempty"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// MessageResponse is the success body for endpoints that only confirm an
// action happened (signup, forgot-password, reset-password).
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Account Types
// ============================================================================

// Account is the public view of an account. Password hashes and reset
// credentials never appear here.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Nickname  string    `json:"nickname,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Federated bool      `json:"federated"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupRequest creates a new local account.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
}

// SignInRequest authenticates a local account.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by sign-in and the federation callback.
type AuthResponse struct {
	// Token is the JWT access token used to authenticate API requests
	Token string `json:"token"`

	// Account is the signed-in account's public view
	Account Account `json:"account"`
}

// ForgotPasswordRequest starts the reset flow for the given email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest carries the new password; the token rides in the URL.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ============================================================================
// Listing Types
// ============================================================================

// Listing is the public view of a toy listing.
type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListingRequest creates or fully replaces a listing.
type ListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	PriceCents  int64  `json:"price_cents"`
}

// ListingsResponse wraps the listing collection.
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
}

// CategoriesResponse enumerates the accepted category and condition values.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Conditions []string `json:"conditions"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports per-dependency status on the readiness endpoint.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
