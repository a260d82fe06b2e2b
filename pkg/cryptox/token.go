package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ResetTokenBytes is the entropy of a password-reset token. The hex encoding
// of 20 bytes yields the 40-character token that goes into the reset link.
const ResetTokenBytes = 20

// GenerateResetToken creates a cryptographically random password-reset token
// as a lowercase hex string (40 characters). The raw token is mailed to the
// account holder; only its fingerprint is ever persisted.
func GenerateResetToken() (string, error) {
	buf := make([]byte, ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url-encoded (43 chars). Storing the fingerprint instead of the token
// lets us look a token up without keeping the bearer secret on disk.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
