// Package session implements the bearer-token session registry. Tokens are
// HS256-signed and carry a session id (jti); the registry keeps the set of
// live session ids in memory, so logout and process restart both invalidate
// tokens regardless of their signed expiry.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Resolve for malformed, expired, forged, or
// revoked tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the signed contents of a session token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Registry issues, resolves, and revokes session tokens. Sessions live for
// the lifetime of the process only.
type Registry struct {
	secret []byte
	ttl    time.Duration

	mu   sync.RWMutex
	live map[string]string // session id (jti) -> user id
}

// NewRegistry creates a Registry signing with secret; tokens expire after
// expirationHours.
func NewRegistry(secret string, expirationHours int64) *Registry {
	return &Registry{
		secret: []byte(secret),
		ttl:    time.Duration(expirationHours) * time.Hour,
		live:   make(map[string]string),
	}
}

// Issue creates a session for userID and returns the signed bearer token.
func (r *Registry) Issue(userID string) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	r.mu.Lock()
	r.live[sessionID] = userID
	r.mu.Unlock()

	return tokenString, nil
}

// Resolve validates the token and returns the user id of its live session.
// A token whose session was revoked resolves to ErrInvalidToken even if the
// signature is still valid.
func (r *Registry) Resolve(tokenString string) (string, error) {
	claims, err := r.parse(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	r.mu.RLock()
	userID, ok := r.live[claims.ID]
	r.mu.RUnlock()
	if !ok {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Revoke ends the session for the given token. Unknown or malformed tokens
// are a no-op, so logout is idempotent.
func (r *Registry) Revoke(tokenString string) {
	claims, err := r.parse(tokenString)
	if err != nil {
		return
	}

	r.mu.Lock()
	delete(r.live, claims.ID)
	r.mu.Unlock()
}

func (r *Registry) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
