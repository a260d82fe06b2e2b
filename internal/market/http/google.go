package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
	"github.com/toynest/toynest/pkg/slogx"

	"golang.org/x/oauth2"
)

const stateCookieName = "oauthstate"

// defaultGoogleUserInfoURL is where the access token is traded for a profile.
const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleHandler runs the Google federation flow: a redirect endpoint that
// sends the browser to the provider, and a callback that turns the returned
// code into a signed-in account.
type GoogleHandler struct {
	FederationService *service.FederationService
	Config            *oauth2.Config

	// UserInfoURL can be overridden in tests to point at a stub provider.
	UserInfoURL string
}

// HandleRedirect godoc
//
//	@Summary		Google Sign-in Redirect
//	@Description	Redirect the browser to Google's consent screen. A state cookie guards the callback.
//	@Tags			Auth
//	@Success		302	"Redirect to provider"
//	@Router			/v1/auth/google [get].
func (h *GoogleHandler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	state := newStateCookie(w)
	http.Redirect(w, r, h.Config.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback godoc
//
//	@Summary		Google Sign-in Callback
//	@Description	Exchange the provider code, then link or create the matching account and return a JWT
//	@Tags			Auth
//	@Produce		json
//	@Param			state	query		string					true	"State echoed by the provider"
//	@Param			code	query		string					true	"Authorization code"
//	@Success		200		{object}	nestsdk.AuthResponse	"token, account"
//	@Failure		400		{object}	nestsdk.ErrorResponse	"error, message"
//	@Failure		502		{object}	nestsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/google/callback [get].
func (h *GoogleHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Missing oauth state")
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		clearStateCookie(w)
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "Invalid oauth state")
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, nestsdk.ErrorCodeInvalidRequest, "code is required")
		return
	}

	token, err := h.Config.Exchange(ctx, code)
	if err != nil {
		log.Warn("code exchange failed", "err", err)
		writeError(w, http.StatusBadGateway, nestsdk.ErrorCodeServerError, "Failed to exchange authorization code")
		return
	}

	assertion, err := h.fetchAssertion(r, token)
	if err != nil {
		log.Warn("userinfo fetch failed", "err", err)
		writeError(w, http.StatusBadGateway, nestsdk.ErrorCodeServerError, "Failed to fetch user info")
		return
	}

	res, err := h.FederationService.Link(ctx, assertion)
	if err != nil {
		log.Error("federated sign-in failed", "err", err)
		writeError(w, http.StatusInternalServerError, nestsdk.ErrorCodeServerError, "Failed to sign in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nestsdk.AuthResponse{
		Token:   res.AccessToken,
		Account: accountView(res.Account),
	})
}

// fetchAssertion trades the provider token for the profile fields we need.
func (h *GoogleHandler) fetchAssertion(r *http.Request, token *oauth2.Token) (domain.FederatedAssertion, error) {
	url := h.UserInfoURL
	if url == "" {
		url = defaultGoogleUserInfoURL
	}

	client := h.Config.Client(r.Context(), token)
	resp, err := client.Get(url)
	if err != nil {
		return domain.FederatedAssertion{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FederatedAssertion{}, err
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return domain.FederatedAssertion{}, err
	}
	if info.ID == "" || info.Email == "" {
		return domain.FederatedAssertion{}, errors.New("provider profile missing id or email")
	}

	return domain.FederatedAssertion{
		ProviderID:  info.ID,
		Email:       info.Email,
		DisplayName: info.Name,
	}, nil
}

func newStateCookie(w http.ResponseWriter) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
	})
	return state
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookieName,
		Path:   "/",
		MaxAge: -1,
	})
}
