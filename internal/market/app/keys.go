package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/toynest/toynest/pkg/cryptox"
	"github.com/toynest/toynest/pkg/jwtx"
)

// InitSigningKeys builds the token signer and verifier for the configured
// algorithm.
//
// Supported algorithms:
//   - "HS256": symmetric; requires TOYNEST_SIGNING_SECRET.
//   - "EdDSA": asymmetric; loads the PKCS#8 PEM key from
//     TOYNEST_SIGNING_KEY_FILE, or generates an ephemeral key when no file is
//     configured. Ephemeral keys invalidate all outstanding tokens on restart.
func InitSigningKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, jwtx.Verifier, error) {
	switch cfg.Algorithm {
	case "HS256":
		if cfg.SigningSecret == "" {
			return nil, nil, fmt.Errorf("HS256 requires TOYNEST_SIGNING_SECRET")
		}

		signer, err := jwtx.NewSignerHS256([]byte(cfg.SigningSecret))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize HS256 signer: %w", err)
		}

		logger.Info("signing key loaded", "algorithm", "HS256")
		return signer, jwtx.NewCommonHS256([]byte(cfg.SigningSecret), cfg.Issuer), nil

	case "EdDSA", "":
		pemKey, err := loadOrGenerateEdDSAKey(cfg, logger)
		if err != nil {
			return nil, nil, err
		}

		signer, err := jwtx.NewSignerEdDSA(pemKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize EdDSA signer: %w", err)
		}

		return signer, jwtx.NewCommonEdDSA(signer.PublicKey(), cfg.Issuer), nil

	default:
		return nil, nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
}

func loadOrGenerateEdDSAKey(cfg Config, logger *slog.Logger) ([]byte, error) {
	if cfg.SigningKey == "" {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}

		logger.Info("signing key generated", "algorithm", "EdDSA", "mode", "ephemeral")
		return pemKey, nil
	}

	pemKey, err := os.ReadFile(cfg.SigningKey)
	if os.IsNotExist(err) {
		// First boot with a configured key file: generate and persist it so
		// tokens survive restarts.
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		if err := os.WriteFile(cfg.SigningKey, pemKey, 0o600); err != nil {
			return nil, fmt.Errorf("failed to persist signing key: %w", err)
		}

		logger.Info("signing key generated", "algorithm", "EdDSA", "path", cfg.SigningKey)
		return pemKey, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}

	logger.Info("signing key loaded", "algorithm", "EdDSA", "path", cfg.SigningKey)
	return pemKey, nil
}
