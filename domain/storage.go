package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/kauportal/portal/identity"
)

// Storage is the full persistence surface used by the portal.
type Storage interface {
	IdentityStorage
	ProfileStorage
	SessionStorage
}

// IdentityStorage persists account records.
type IdentityStorage interface {
	CreateIdentity(ctx context.Context, ident *identity.Identity) error
	GetIdentity(ctx context.Context, id uuid.UUID) (*identity.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*identity.Identity, error)
}

// ProfileStorage persists the 1:1 role extension records. The Ensure
// methods are get-or-create: a second call for the same identity is a
// no-op, and a racing duplicate surfaces the store's integrity error
// unchanged.
type ProfileStorage interface {
	EnsureStudentProfile(ctx context.Context, identityID uuid.UUID) error
	EnsureFacultyProfile(ctx context.Context, identityID uuid.UUID) error
}

// SessionStorage persists session records.
type SessionStorage interface {
	CreateSession(ctx context.Context, s *identity.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*identity.Session, error)
	RevokeSession(ctx context.Context, id uuid.UUID) error
}

// IDGenerator produces a new surrogate id.
type IDGenerator func() uuid.UUID

// Hasher defines one-way credential hashing and verification.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}
