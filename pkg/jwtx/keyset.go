package jwtx

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

var ErrNoKey = errors.New("jwtx: key not found")

// KeySet holds the public verification keys. Safe for concurrent use.
type KeySet struct {
	mu  sync.RWMutex
	jks JWKS
	pub map[string]ed25519.PublicKey
}

func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]ed25519.PublicKey)}
}

// AddSigner registers the signer's public half.
func (k *KeySet) AddSigner(s Signer) error {
	return k.AddJWK(s.PublicJWK())
}

func (k *KeySet) AddJWK(j JWK) error {
	key, err := j.PublicKey()
	if err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub[j.Kid] = key
	k.jks.Keys = append(k.jks.Keys, j)
	return nil
}

func (k *KeySet) Get(kid string) (ed25519.PublicKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pk, ok := k.pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

func (k *KeySet) PublicJWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return JWKS{Keys: append([]JWK(nil), k.jks.Keys...)}
}

// IsReady reports whether at least one key is loaded. Readiness probes use it.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub) > 0
}

// ResetFromJWKS replaces every key. Keys of unsupported types are skipped so
// an auth service publishing extra algorithms does not break verification.
func (k *KeySet) ResetFromJWKS(jwks JWKS) (int, error) {
	next := make(map[string]ed25519.PublicKey, len(jwks.Keys))
	kept := JWKS{}
	for _, j := range jwks.Keys {
		key, err := j.PublicKey()
		if err != nil {
			continue
		}
		next[j.Kid] = key
		kept.Keys = append(kept.Keys, j)
	}
	if len(next) == 0 {
		return 0, errors.New("jwtx: jwks has no usable Ed25519 keys")
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub = next
	k.jks = kept
	return len(next), nil
}

// RemoteKeySet keeps a KeySet in sync with the auth service's JWKS endpoint.
type RemoteKeySet struct {
	URL    string
	Client *http.Client
	Keys   *KeySet
}

func NewRemoteKeySet(url string, keys *KeySet) *RemoteKeySet {
	return &RemoteKeySet{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Keys:   keys,
	}
}

// Refresh fetches the JWKS once and swaps it in.
func (r *RemoteKeySet) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return fmt.Errorf("jwtx: build jwks request: %w", err)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}
	_, err = r.Keys.ResetFromJWKS(jwks)
	return err
}

// Run refreshes every interval until ctx is done. Failures keep the previous
// keys and are logged.
func (r *RemoteKeySet) Run(ctx context.Context, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				log.Warn("jwks refresh failed", slog.String("url", r.URL), slog.Any("err", err))
			}
		}
	}
}
