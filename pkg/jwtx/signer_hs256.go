package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256SecretBytes is the smallest secret we accept for HS256 signing.
// Anything shorter is trivially brute-forceable.
const MinHS256SecretBytes = 32

// HS256Signer implements the Signer interface using HMAC-SHA256 with a
// process-wide shared secret.
type HS256Signer struct {
	secret []byte
	alg    string
}

func newHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinHS256SecretBytes {
		return nil, errors.New("jwtx: HS256 secret too short")
	}
	return &HS256Signer{
		secret: secret,
		alg:    jwt.SigningMethodHS256.Alg(),
	}, nil
}

func (s *HS256Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check to make sure we actually have a secret.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinHS256SecretBytes {
		return errors.New("jwtx: HS256 secret too short")
	}
	return nil
}
