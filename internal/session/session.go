// Package session implements the server-side session registry backing the
// authentication gate. Sessions are opaque: the cookie carries only a random
// token, all state lives in Redis under a TTL, and logout deletes the key so
// revocation is immediate.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when the token is absent, expired, or revoked.
var ErrNoSession = errors.New("sessao inexistente ou expirada")

const keyPrefix = "session:"

// Manager orchestrates cookie based sessions backed by Redis.
type Manager struct {
	rdb        *redis.Client
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(rdb *redis.Client, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{rdb: rdb, cookieName: cookieName, ttl: ttl, secure: secure}
}

// Create registers a new session for the user and returns the opaque token.
func (m *Manager) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := m.rdb.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), m.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a token back to the user it was issued for, refreshing the TTL
// on each hit so active sessions slide instead of expiring mid-use.
func (m *Manager) Resolve(ctx context.Context, token string) (uint, error) {
	val, err := m.rdb.GetEx(ctx, keyPrefix+token, m.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session payload corrompido: %w", err)
	}
	return uint(id), nil
}

// Destroy revokes the session. Revoking an unknown token is a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	err := m.rdb.Del(ctx, keyPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// ReadToken extracts the session token from the request cookie.
func (m *Manager) ReadToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// WriteCookie sets the session cookie on the response.
func (m *Manager) WriteCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the response.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
