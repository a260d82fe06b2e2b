package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	httpapi "github.com/toynest/toynest/internal/market/http"
	"github.com/toynest/toynest/internal/market/service"
	"github.com/toynest/toynest/internal/market/store"
	"github.com/toynest/toynest/internal/market/store/drivers/sqlite"
	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/jwtx"
	"github.com/toynest/toynest/pkg/mailx"
	"github.com/toynest/toynest/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the marketplace service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer jwtx.Signer
	mailer mailx.Sender

	// Services
	signupService       *service.SignupService
	credentialService   *service.CredentialService
	resetService        *service.PasswordResetService
	federationService   *service.FederationService
	accountService      *service.AccountService
	listingService      *service.ListingService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "toynest-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := InitSigningKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.signer = signer

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP(verifier)

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("toynest api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down toynest api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("toynest api stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer picks SMTP delivery when a relay is configured, console logging
// otherwise.
func (app *Application) initMailer() error {
	if app.cfg.SMTPHost == "" {
		app.logger.Info("no SMTP relay configured, mail will be logged to console")
		app.mailer = &mailx.ConsoleSender{Logger: app.logger}
		return nil
	}

	sender, err := mailx.NewSMTPSender(mailx.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.MailFrom,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize SMTP sender: %w", err)
	}

	app.logger.Info("SMTP delivery configured", "host", app.cfg.SMTPHost, "port", app.cfg.SMTPPort)
	app.mailer = sender
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	tokens := &service.TokenIssuer{
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    jwtx.DefaultAccessTokenTTL,
	}

	app.signupService = &service.SignupService{Store: app.db}
	app.credentialService = &service.CredentialService{
		Store:  app.db,
		Tokens: tokens,
	}
	app.resetService = &service.PasswordResetService{
		Store:       app.db,
		Mailer:      app.mailer,
		BaseURL:     app.cfg.BaseURL,
		TokenTTL:    service.DefaultResetTokenTTL,
		MailTimeout: app.cfg.MailTimeout,
	}
	app.federationService = &service.FederationService{
		Store:  app.db,
		Tokens: tokens,
	}
	app.accountService = &service.AccountService{Store: app.db}
	app.listingService = &service.ListingService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP(verifier jwtx.Verifier) {
	router := httpapi.NewRouter(
		app.signer,
		verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SignupService = app.signupService
	router.CredentialService = app.credentialService
	router.PasswordResetService = app.resetService
	router.FederationService = app.federationService
	router.AccountService = app.accountService
	router.ListingService = app.listingService
	router.GoogleOAuth = app.googleOAuthConfig() // nil disables the Google routes
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

func (app *Application) googleOAuthConfig() *oauth2.Config {
	if app.cfg.GoogleClientID == "" || app.cfg.GoogleClientSecret == "" {
		app.logger.Info("google federation not configured, routes disabled")
		return nil
	}

	return &oauth2.Config{
		ClientID:     app.cfg.GoogleClientID,
		ClientSecret: app.cfg.GoogleClientSecret,
		RedirectURL:  app.cfg.GoogleCallbackURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
