package api_test

import (
	"io"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toynest/toynest/pkg/nestsdk"
)

var resetLinkPattern = regexp.MustCompile(`/reset-password/([0-9a-f]{40})`)

// readResetToken scrapes the most recent password-reset token out of the
// container logs. The test containers run without an SMTP relay, so reset
// mail is logged by the console sender instead of delivered.
func readResetToken(t *testing.T, logs func() string) string {
	t.Helper()

	matches := resetLinkPattern.FindAllStringSubmatch(logs(), -1)
	require.NotEmpty(t, matches, "Expected a reset link in the container logs")

	return matches[len(matches)-1][1]
}

// TestPasswordResetFlow walks the full journey: request a reset, pull the
// token out of the mail log, set a new password, and sign in with it.
func TestPasswordResetFlow(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainerWithLogs(t)
	defer cleanup()

	client := nestsdk.NewClient(baseURL)
	signupAndSignIn(t, client, "forgetful@example.com", "forgetful")

	_, err := client.ForgotPassword(t.Context(), "forgetful@example.com")
	require.NoError(t, err)

	token := readResetToken(t, func() string {
		reader, err := container.Logs(t.Context())
		require.NoError(t, err)
		defer reader.Close()

		raw, err := io.ReadAll(reader)
		require.NoError(t, err)
		return string(raw)
	})

	const newPassword = "Brand-New-Secret-99"
	_, err = client.ResetPassword(t.Context(), token, newPassword)
	require.NoError(t, err)

	// Old password no longer works
	_, err = client.SignIn(t.Context(), "forgetful@example.com", testPassword)
	assertAPIErrorCode(t, err, http.StatusBadRequest, nestsdk.ErrorCodeInvalidCredentials)

	// New password does
	session, err := client.SignIn(t.Context(), "forgetful@example.com", newPassword)
	require.NoError(t, err)
	require.Equal(t, "forgetful@example.com", session.Account().Email)

	// The token was consumed and cannot be replayed
	_, err = client.ResetPassword(t.Context(), token, "Another-Password-1")
	assertAPIErrorCode(t, err, http.StatusBadRequest, nestsdk.ErrorCodeInvalidResetToken)
}

// TestForgotPasswordUnknownEmail verifies the endpoint reports unknown
// accounts rather than silently accepting them.
func TestForgotPasswordUnknownEmail(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := nestsdk.NewClient(baseURL)

	_, err := client.ForgotPassword(t.Context(), "ghost@example.com")
	assertAPIErrorCode(t, err, http.StatusNotFound, nestsdk.ErrorCodeNotFound)
}

// TestResetPasswordBogusToken verifies an unknown token is rejected.
func TestResetPasswordBogusToken(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := nestsdk.NewClient(baseURL)
	signupAndSignIn(t, client, "secure@example.com", "secure")

	_, err := client.ResetPassword(t.Context(),
		"0000000000000000000000000000000000000000", "Does-Not-Matter-1")
	assertAPIErrorCode(t, err, http.StatusBadRequest, nestsdk.ErrorCodeInvalidResetToken)
}
