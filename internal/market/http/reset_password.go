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

type ResetPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Consume a password-reset token and set a new password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Reset token from the emailed link"
//	@Param			request	body		nestsdk.ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	nestsdk.MessageResponse			"message"
//	@Failure		400		{object}	nestsdk.ErrorResponse			"error, message"
//	@Failure		500		{object}	nestsdk.ErrorResponse			"error, message"
//	@Router			/v1/auth/reset-password/{token} [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.PathValue("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "token is required")
		return
	}

	var req nestsdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "password is required")
		return
	}

	if err := h.ResetService.ResetPassword(ctx, token, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidResetToken,
				"Password reset token is invalid or has expired")
		default:
			log.Error("reset-password failed", "err", err)
			writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to reset password")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nestsdk.MessageResponse{
		Message: "Password has been reset",
	})
}
