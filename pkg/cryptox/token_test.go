package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)

	// 20 random bytes, hex-encoded
	require.Len(t, token, 40)
	require.Regexp(t, "^[0-9a-f]{40}$", token)

	token2, err := GenerateResetToken()
	require.NoError(t, err)
	require.NotEqual(t, token, token2, "tokens should be unique")
}

func TestGenerateResetToken_EntropyQuality(t *testing.T) {
	const count = 100
	tokens := make(map[string]bool, count)

	for range count {
		token, err := GenerateResetToken()
		require.NoError(t, err)
		require.NotContains(t, tokens, token, "duplicate token generated")
		tokens[token] = true
	}
}

func TestFingerprintToken(t *testing.T) {
	token1 := "test-token-1"
	token2 := "test-token-2"

	fp1a := FingerprintToken(token1)
	fp1b := FingerprintToken(token1)
	fp2 := FingerprintToken(token2)

	// Fingerprint should be deterministic
	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")

	// Different tokens should have different fingerprints
	require.NotEqual(t, fp1a, fp2, "different tokens should have different fingerprints")

	// Fingerprint should be base64url encoded SHA-256 (43 chars)
	require.Len(t, fp1a, 43, "SHA-256 base64url should be 43 chars")
}
