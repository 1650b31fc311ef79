// Package session caches the backend access token, refresh token and expiry
// for a dashboard visitor or a CLI user.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// Fixed storage keys.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	TokenExpiryKey  = "token_expiry"
)

// DefaultBuffer is how long before the stored expiry a token counts as expired.
const DefaultBuffer = 5 * time.Minute

// Tokens is what a Store persists. Expiry is unix seconds; 0 means unknown.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	Expiry       int64
}

// Store persists Tokens for the session ID carried by ctx.
type Store interface {
	Load(ctx context.Context) (Tokens, error)
	Save(ctx context.Context, t Tokens) error
	Clear(ctx context.Context) error
}

type ctxKey struct{}

// WithID returns a context bound to the given session ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the session ID, or "" for the single-user CLI session.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Manager implements the token rules on top of a Store.
type Manager struct {
	store  Store
	now    func() time.Time
	buffer time.Duration
}

type Option func(*Manager)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithBuffer overrides DefaultBuffer.
func WithBuffer(d time.Duration) Option {
	return func(m *Manager) { m.buffer = d }
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{store: store, now: time.Now, buffer: DefaultBuffer}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetTokens stores a backend session. The expiry comes from expires_at, then
// expires_in, then the access token's exp claim.
func (m *Manager) SetTokens(ctx context.Context, s model.Session) error {
	t := Tokens{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	switch {
	case s.ExpiresAt > 0:
		t.Expiry = s.ExpiresAt
	case s.ExpiresIn > 0:
		t.Expiry = m.now().Unix() + s.ExpiresIn
	default:
		t.Expiry = expiryFromClaims(s.AccessToken)
	}
	return m.store.Save(ctx, t)
}

func (m *Manager) Tokens(ctx context.Context) (Tokens, error) {
	return m.store.Load(ctx)
}

func (m *Manager) RefreshToken(ctx context.Context) (string, error) {
	t, err := m.store.Load(ctx)
	return t.RefreshToken, err
}

// Expired applies the expiry rule to t: unknown expiry is expired, and so is
// anything within the buffer of its expiry.
func (m *Manager) Expired(t Tokens) bool {
	if t.Expiry == 0 {
		return true
	}
	return m.now().Unix() >= t.Expiry-int64(m.buffer/time.Second)
}

func (m *Manager) IsExpired(ctx context.Context) (bool, error) {
	t, err := m.store.Load(ctx)
	if err != nil {
		return true, err
	}
	return m.Expired(t), nil
}

// HasTokens reports whether an access token is stored. Load errors count as no.
func (m *Manager) HasTokens(ctx context.Context) bool {
	t, err := m.store.Load(ctx)
	return err == nil && t.AccessToken != ""
}

func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// expiryFromClaims reads exp without verifying the signature; the backend
// verifies, the client only needs a refresh hint.
func expiryFromClaims(token string) int64 {
	if token == "" {
		return 0
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Unix()
}
