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

type SignupHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Create a new account with email and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		nestsdk.SignupRequest	true	"Signup details"
//	@Success		201		{object}	nestsdk.MessageResponse	"message"
//	@Failure		400		{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		500		{object}	nestsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req nestsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "email and password are required")
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "first_name and last_name are required")
		return
	}

	_, err := h.SignupService.Signup(ctx, service.SignupParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Nickname:  req.Nickname,
		ZipCode:   req.ZipCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFederatedAccountExists):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeFederatedAccount,
				"You have previously signed in using Google. Please use Google login to sign in.")
		case errors.Is(err, service.ErrEmailInUse):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeEmailInUse, "Email already in use")
		case errors.Is(err, service.ErrNicknameInUse):
			writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeNicknameInUse, "Nickname already in use")
		default:
			log.Error("signup failed", "err", err)
			writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to create user")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, nestsdk.MessageResponse{
		Message: "User created successfully",
	})
}
