package domain

import "time"

type Account struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Nickname     string
	ZipCode      string
	PasswordHash string // argon2 encoded, empty for federated-only accounts
	FederatedID  string // provider subject id, empty for local accounts
	Reset        *ResetSecret
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResetSecret is the active password-reset credential on an account. The
// raw token is never stored; only its fingerprint is. Both fields are set
// and cleared together.
type ResetSecret struct {
	TokenHash string
	ExpiresAt time.Time
}

// HasPassword reports whether local sign-in is possible at all.
func (a *Account) HasPassword() bool { return a.PasswordHash != "" }

// IsFederated reports whether the account is linked to an external identity
// provider.
func (a *Account) IsFederated() bool { return a.FederatedID != "" }

// FederatedAssertion is a verified identity statement from an external
// provider, produced after the provider's token exchange.
type FederatedAssertion struct {
	ProviderID  string // stable subject id at the provider
	Email       string
	DisplayName string
}
