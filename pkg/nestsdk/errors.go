package nestsdk

import "fmt"

// Error codes returned in ErrorResponse.Error. Stable across releases;
// clients should branch on these rather than on Message text.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeFederatedAccount   = "federated_account"
	ErrorCodeEmailInUse         = "email_in_use"
	ErrorCodeNicknameInUse      = "nickname_in_use"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidResetToken  = "invalid_reset_token"
	ErrorCodeDeliveryFailed     = "delivery_failed"
	ErrorCodeNotOwner           = "not_owner"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeServerError        = "server_error"
)

// APIError is the typed error the SDK surfaces for any non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status the server answered with
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCode reports whether err is an *APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}
