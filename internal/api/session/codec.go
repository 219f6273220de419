// Package session holds the client-side identity snapshot: a signed token in
// a cookie, written at sign-up/sign-in and trusted until it expires. The user
// store is never consulted to validate an existing session.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// DefaultTTL is the absolute session lifetime. The window is fixed at issue
// time, not sliding: activity does not extend it.
const DefaultTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	PreferredCurrency string `json:"preferred_currency"`
	Country           string `json:"country"`
	LastLogin         int64  `json:"last_login"`
	jwt.RegisteredClaims
}

// Codec serializes session snapshots to HS256-signed tokens. Signing means a
// client can read its own snapshot but cannot mint or alter one.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec. ttl <= 0 falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured session lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode signs s into a token expiring ttl from now.
func (c *Codec) Encode(s *domain.Session) (string, error) {
	now := c.now()
	claims := sessionClaims{
		Email:             s.Email,
		Name:              s.Name,
		PreferredCurrency: s.PreferredCurrency,
		Country:           s.Country,
		LastLogin:         s.LastLogin.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode parses a token back into a session. Any failure (malformed input,
// bad signature, wrong algorithm, expiry) returns nil: a broken session is
// indistinguishable from no session.
func (c *Codec) Decode(token string) *domain.Session {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return nil
	}

	return &domain.Session{
		UserID:            claims.Subject,
		Email:             claims.Email,
		Name:              claims.Name,
		PreferredCurrency: claims.PreferredCurrency,
		Country:           claims.Country,
		LastLogin:         time.Unix(claims.LastLogin, 0).UTC(),
	}
}
