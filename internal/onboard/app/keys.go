package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/jwtx"
)

// Keys is the token verification material. Signer is set only in local key
// mode.
type Keys struct {
	KeySet   *jwtx.KeySet
	Verifier *jwtx.EdDSAVerifier
	Signer   *jwtx.EdDSASigner
	Remote   *jwtx.RemoteKeySet
}

// InitKeys loads verification keys.
//
// Key modes:
//   - remote: AUTH_JWKS_URL is set. Keys are fetched from the auth service
//     and refreshed every AUTH_JWKS_REFRESH by the caller running Remote.
//   - local: a PKCS8 Ed25519 key is read from AUTH_SIGNING_KEY_FILE, created
//     on first use. Intended for development and `onboard token`.
func InitKeys(ctx context.Context, cfg AuthConfig, logger *slog.Logger) (*Keys, error) {
	keys := &Keys{KeySet: jwtx.NewKeySet()}
	keys.Verifier = jwtx.NewVerifierEdDSA(keys.KeySet, jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   30 * time.Second,
	})

	if cfg.JWKSURL != "" {
		keys.Remote = jwtx.NewRemoteKeySet(cfg.JWKSURL, keys.KeySet)
		// Readiness reports the missing keys; the refresh loop retries.
		if err := keys.Remote.Refresh(ctx); err != nil {
			logger.Warn("initial jwks fetch failed", slog.String("url", cfg.JWKSURL), slog.Any("err", err))
		} else {
			logger.Info("jwks loaded", slog.String("url", cfg.JWKSURL))
		}
		return keys, nil
	}

	signer, err := LoadSigner(cfg)
	if err != nil {
		return nil, err
	}
	if err := keys.KeySet.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("register signing key: %w", err)
	}
	keys.Signer = signer

	logger.Warn("using local signing key; set AUTH_JWKS_URL in production",
		slog.String("file", cfg.SigningKeyFile),
		slog.String("kid", cfg.KeyID),
	)
	return keys, nil
}

// LoadSigner reads, or creates, the local Ed25519 signing key.
func LoadSigner(cfg AuthConfig) (*jwtx.EdDSASigner, error) {
	pemKey, err := cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, fmt.Errorf("load signing key: %w", err)
	}
	signer, err := jwtx.NewSignerEdDSA(cfg.KeyID, pemKey)
	if err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}
	return signer, nil
}
