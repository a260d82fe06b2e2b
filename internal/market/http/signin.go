package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
	"github.com/toynest/toynest/pkg/slogx"
)

type SignInHandler struct {
	CredentialService *service.CredentialService
}

// ServeHTTP godoc
//
//	@Summary		Sign-in Endpoint
//	@Description	Authenticate with email and password, returning a JWT access token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		nestsdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	nestsdk.AuthResponse	"token, account"
//	@Failure		400		{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		500		{object}	nestsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req nestsdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid request body")
		return
	}

	res, err := h.CredentialService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidCredentials, "Invalid email or password")
		case errors.Is(err, service.ErrFederatedAccountOnly):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeFederatedAccount,
				"You have previously signed in using Google. Please use Google login to sign in.")
		default:
			log.Error("sign-in failed", "err", err)
			writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to sign in")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nestsdk.AuthResponse{
		Token:   res.AccessToken,
		Account: accountView(res.Account),
	})
}
