package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
	"github.com/toynest/toynest/pkg/slogx"
)

type ForgotPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Issue a password-reset token for the account and send it by email
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		nestsdk.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	nestsdk.MessageResponse			"message"
//	@Failure		400		{object}	nestsdk.ErrorResponse			"error, message"
//	@Failure		404		{object}	nestsdk.ErrorResponse			"error, message"
//	@Failure		502		{object}	nestsdk.ErrorResponse			"error, message"
//	@Router			/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req nestsdk.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "email is required")
		return
	}

	if err := h.ResetService.RequestReset(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, nestsdk.ErrorCodeNotFound, "User not found")
		case errors.Is(err, service.ErrDeliveryFailed):
			// The token is stored; only the mail didn't go out.
			writeError(w, http.StatusBadGateway, nestsdk.ErrorCodeDeliveryFailed, "Failed to send password reset email")
		default:
			log.Error("forgot-password failed", "err", err)
			writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to process request")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nestsdk.MessageResponse{
		Message: "Password reset link sent",
	})
}
