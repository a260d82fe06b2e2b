package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyEmail     ctxKey = "email"
	CtxKeyClaims    ctxKey = "claims" // if you want full jwtx.Claims
)

// AccountIDFromCtx returns the authenticated account id, or "" when the
// request never passed through AuthnMiddleware.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// EmailFromCtx returns the authenticated account's email, or "".
func EmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
