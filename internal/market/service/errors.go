package service

import "errors"

var (
	// ErrInvalidCredentials covers both "no such email" and "wrong password"
	// so sign-in responses can't be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrFederatedAccountOnly means the account exists but was created
	// through an external provider and has no local password.
	ErrFederatedAccountOnly = errors.New("federated_account_only")

	// ErrFederatedAccountExists means signup hit an email that already
	// belongs to a federated account.
	ErrFederatedAccountExists = errors.New("federated_account_exists")

	// ErrEmailInUse means signup hit an existing account with that email.
	ErrEmailInUse = errors.New("email_in_use")

	// ErrNicknameInUse means the chosen nickname is already taken.
	ErrNicknameInUse = errors.New("nickname_in_use")

	// ErrAccountNotFound is surfaced by flows that confirm account existence,
	// like the password-reset request.
	ErrAccountNotFound = errors.New("account_not_found")

	// ErrInvalidResetToken means the reset token is unknown, already used,
	// or past its expiry. The three cases are deliberately indistinguishable.
	ErrInvalidResetToken = errors.New("invalid_reset_token")

	// ErrDeliveryFailed means the reset mail could not be handed to the
	// relay. The stored reset credential stays valid.
	ErrDeliveryFailed = errors.New("delivery_failed")

	// ErrNotOwner means the caller tried to mutate a listing they don't own.
	ErrNotOwner = errors.New("not_owner")

	// ErrInvalidListing means a listing field failed validation.
	ErrInvalidListing = errors.New("invalid_listing")
)
