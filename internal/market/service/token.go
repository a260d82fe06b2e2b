package service

import (
	"time"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/pkg/jwtx"
)

// TokenIssuer mints access tokens for authenticated accounts. Every sign-in
// path (local, federated, post-reset) funnels through here so claims stay
// consistent.
type TokenIssuer struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue signs a fresh access token for the account.
func (t *TokenIssuer) Issue(a domain.Account) (string, error) {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(a.ID, a.Email, ttl, t.Issuer, time.Now().UTC())
	return t.Signer.Sign(claims)
}
