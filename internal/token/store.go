// Package token caches Hubstaff access tokens between runs.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hubsum/internal/hubstaff"
)

// expiryBuffer is subtracted from the provider-reported lifetime so a
// near-expiry token is never handed out.
const expiryBuffer = 60 * time.Second

// Cached is the persisted token record.
type Cached struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Refresher exchanges a refresh token for a new access token grant.
type Refresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (hubstaff.TokenGrant, error)
}

// Persistence stores the cached token record between runs.
type Persistence interface {
	Load() (Cached, error)
	Save(Cached) error
}

// Store hands out a valid access token, refreshing through the provider on
// cache miss or expiry. A cache that cannot be read or parsed is treated as
// a miss, never as a failure; refresh and save failures are fatal.
type Store struct {
	refreshToken string
	auth         Refresher
	cache        Persistence
	now          func() time.Time
}

// NewStore creates a store backed by the given persistence.
func NewStore(refreshToken string, auth Refresher, cache Persistence) *Store {
	return &Store{
		refreshToken: refreshToken,
		auth:         auth,
		cache:        cache,
		now:          time.Now,
	}
}

// AccessToken returns the cached token while its expiry is strictly in the
// future, otherwise refreshes and persists a new record first.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	now := s.now().UTC()
	if cached, err := s.cache.Load(); err == nil && cached.AccessToken != "" && cached.ExpiresAt.After(now) {
		return cached.AccessToken, nil
	}

	rec, err := s.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return rec.AccessToken, nil
}

// Refresh unconditionally obtains a new access token and overwrites the cache.
func (s *Store) Refresh(ctx context.Context) (Cached, error) {
	grant, err := s.auth.RefreshToken(ctx, s.refreshToken)
	if err != nil {
		return Cached{}, err
	}

	rec := Cached{
		AccessToken: grant.AccessToken,
		ExpiresAt:   s.now().UTC().Add(time.Duration(grant.ExpiresIn)*time.Second - expiryBuffer),
	}
	if err := s.cache.Save(rec); err != nil {
		return Cached{}, fmt.Errorf("token: saving cache: %w", err)
	}
	return rec, nil
}

// Status describes the cache state without touching the provider.
type Status struct {
	Cached    bool
	Valid     bool
	ExpiresAt time.Time
}

// Status inspects the cached record, if any.
func (s *Store) Status() Status {
	cached, err := s.cache.Load()
	if err != nil || cached.AccessToken == "" {
		return Status{}
	}
	return Status{
		Cached:    true,
		Valid:     cached.ExpiresAt.After(s.now().UTC()),
		ExpiresAt: cached.ExpiresAt,
	}
}

// FilePersistence stores the record as a flat JSON file, overwritten
// wholesale on each save.
type FilePersistence struct {
	Path string
}

// Load reads and parses the cache file.
func (f FilePersistence) Load() (Cached, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Cached{}, err
	}
	var rec Cached
	if err := json.Unmarshal(data, &rec); err != nil {
		return Cached{}, fmt.Errorf("token: parsing cache file: %w", err)
	}
	return rec, nil
}

// Save writes the record, creating the parent directory if needed.
func (f FilePersistence) Save(rec Cached) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("token: creating cache dir: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("token: encoding cache: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("token: writing cache file: %w", err)
	}
	return nil
}

// Memory is an in-process Persistence, used when the on-disk cache is
// bypassed and by tests.
type Memory struct {
	rec Cached
	ok  bool
}

// Load returns the stored record, or os.ErrNotExist before the first save.
func (m *Memory) Load() (Cached, error) {
	if !m.ok {
		return Cached{}, os.ErrNotExist
	}
	return m.rec, nil
}

// Save replaces the stored record.
func (m *Memory) Save(rec Cached) error {
	m.rec, m.ok = rec, true
	return nil
}
