/*
Package nestsdk provides a client SDK for the ToyNest marketplace API.

# Client vs Session

The package is organized around two types:

  - Client: unauthenticated operations (signup, sign-in, password reset,
    public listing reads, health probes) and Session construction
  - Session: authenticated operations carrying a bearer token

Create a Client to talk to public endpoints and sign in:

	client := nestsdk.NewClient("https://api.toynest.example")

	_, err := client.Signup(ctx, nestsdk.SignupRequest{
		Email:     "avery@example.com",
		Password:  "correct horse battery staple",
		FirstName: "Avery",
		LastName:  "Stone",
	})

	session, err := client.SignIn(ctx, "avery@example.com", "correct horse battery staple")

Use the Session for anything that needs the account's identity:

	me, err := session.Me(ctx)

	listing, err := session.CreateListing(ctx, nestsdk.ListingRequest{
		Title:     "Wooden train set",
		Category:  "vehicles",
		Condition: "good",
	})

# Password Reset

The reset flow is two calls with an email round-trip in between. The token
arrives as the last path segment of the mailed link:

	_, err := client.ForgotPassword(ctx, "avery@example.com")
	// ... user clicks https://.../reset-password/<token> ...
	_, err = client.ResetPassword(ctx, token, "new passphrase")

# Error Handling

Non-2xx responses surface as *APIError with a stable machine-readable code:

	_, err := client.SignIn(ctx, email, password)
	if nestsdk.IsCode(err, nestsdk.ErrorCodeFederatedAccount) {
		// steer the user to the provider flow
	}

Access tokens expire after an hour and there is no refresh grant; when a
session call fails with ErrorCodeInvalidToken, sign in again.
*/
package nestsdk
