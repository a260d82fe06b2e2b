package http

import (
	"errors"
	"net/http"

	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
	"github.com/toynest/toynest/pkg/slogx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the public view of the authenticated account
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	nestsdk.Account			"account"
//	@Failure		401	"Missing or invalid bearer token"
//	@Failure		404	{object}	nestsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromCtx(ctx)
	account, err := h.AccountService.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			// Token outlived the account.
			writeError(w, http.StatusNotFound, nestsdk.ErrorCodeNotFound, "User not found")
			return
		}
		log.Error("account lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to load account")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountView(account))
}
