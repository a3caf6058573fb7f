// Package session issues and validates portal sessions. Each session
// is a durable row plus a signed JWT carrying the session id, so a
// token survives restarts but dies with revocation or expiry of the
// row.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kauportal/portal/domain"
	"github.com/kauportal/portal/identity"
)

var ErrInvalidSession = errors.New("invalid or expired session")

type Manager struct {
	store  domain.SessionStorage
	secret []byte
	ttl    time.Duration
}

func NewManager(store domain.SessionStorage, secret []byte, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// Issue creates a session row for the identity and returns it together
// with the signed token.
func (m *Manager) Issue(ctx context.Context, identityID uuid.UUID) (*identity.Session, string, error) {
	now := time.Now()
	s := &identity.Session{
		ID:         uuid.New(),
		IdentityID: identityID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(m.ttl),
		Active:     true,
	}
	if err := m.store.CreateSession(ctx, s); err != nil {
		return nil, "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        s.ID.String(),
		Subject:   identityID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, "", err
	}

	return s, token, nil
}

// Validate parses the token, loads the backing session row and checks
// that it is active and unexpired.
func (m *Manager) Validate(ctx context.Context, token string) (*identity.Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	sid, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidSession
	}

	s, err := m.store.GetSession(ctx, sid)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if !s.Active || s.ExpiresAt.Before(time.Now()) {
		return nil, ErrInvalidSession
	}

	return s, nil
}

// Revoke deactivates the session row; its token stops validating
// immediately.
func (m *Manager) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.store.RevokeSession(ctx, id)
}
