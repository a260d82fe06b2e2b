package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/jwtx"
	"github.com/toynest/toynest/pkg/slogx"

	_ "github.com/toynest/toynest/api/market" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/oauth2"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                store.Store
	SignupService        *service.SignupService
	CredentialService    *service.CredentialService
	PasswordResetService *service.PasswordResetService
	FederationService    *service.FederationService
	AccountService       *service.AccountService
	ListingService       *service.ListingService

	// GoogleOAuth is nil when federation is not configured; the Google
	// routes are only registered when it is set.
	GoogleOAuth *oauth2.Config
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerListings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ToyNest Marketplace API
//	@version		0.1.0
//	@description	Backend for the ToyNest second-hand toy marketplace: account signup and sign-in,
//	@description	Google federated login, password reset by email, and toy listings.
//
//	@contact.name	ToyNest Team
//	@contact.url	https://github.com/toynest/toynest
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /v1/auth/signup",
		&SignupHandler{SignupService: r.SignupService})

	r.Mux.Handle("POST /v1/auth/signin",
		&SignInHandler{CredentialService: r.CredentialService})

	r.Mux.Handle("POST /v1/auth/forgot-password",
		&ForgotPasswordHandler{ResetService: r.PasswordResetService})

	r.Mux.Handle("POST /v1/auth/reset-password/{token}",
		&ResetPasswordHandler{ResetService: r.PasswordResetService})

	if r.GoogleOAuth != nil {
		g := &GoogleHandler{
			FederationService: r.FederationService,
			Config:            r.GoogleOAuth,
		}
		r.Mux.HandleFunc("GET /v1/auth/google", g.HandleRedirect)
		r.Mux.HandleFunc("GET /v1/auth/google/callback", g.HandleCallback)
	}
}

func (r *Router) registerAccounts() {
	h := &MeHandler{AccountService: r.AccountService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
	)

	r.Mux.Handle("GET /v1/me", secured)
}

func (r *Router) registerListings() {
	h := &ListingsHandler{ListingService: r.ListingService}

	// Reads are public; mutations require a signed-in account.
	r.Mux.HandleFunc("GET /v1/toys", h.HandleList)
	r.Mux.HandleFunc("GET /v1/toys/categories", h.HandleCategories)
	r.Mux.HandleFunc("GET /v1/toys/{id}", h.HandleGet)

	r.Mux.Handle("POST /v1/toys",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.AuthnMiddleware(r.verifier)))
	r.Mux.Handle("PUT /v1/toys/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.AuthnMiddleware(r.verifier)))
	r.Mux.Handle("DELETE /v1/toys/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.AuthnMiddleware(r.verifier)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
