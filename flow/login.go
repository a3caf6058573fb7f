package flow

import (
	"context"
	"errors"

	"github.com/kauportal/portal/domain"
	"github.com/kauportal/portal/identity"
)

// ErrInvalidLogin is returned for both an unknown email and a wrong
// password, so a caller cannot probe which accounts exist.
var ErrInvalidLogin = errors.New("invalid email or password")

type LoginManager struct {
	store     domain.IdentityStorage
	hasher    domain.Hasher
	preHooks  []Hook
	postHooks []Hook
}

func NewLoginManager(store domain.IdentityStorage, hasher domain.Hasher) *LoginManager {
	return &LoginManager{store: store, hasher: hasher}
}

func (m *LoginManager) AddPreHook(h Hook)  { m.preHooks = append(m.preHooks, h) }
func (m *LoginManager) AddPostHook(h Hook) { m.postHooks = append(m.postHooks, h) }

// Authenticate verifies the email and password and returns the
// identity. The email is normalized the same way registration
// normalizes it, so the login key matches what was stored.
func (m *LoginManager) Authenticate(ctx context.Context, email, password string) (*identity.Identity, error) {
	for _, h := range m.preHooks {
		if err := h(ctx, nil); err != nil {
			return nil, err
		}
	}

	ident, err := m.store.GetIdentityByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidLogin
	}

	if !m.hasher.Compare(password, ident.PasswordHash) {
		return nil, ErrInvalidLogin
	}

	for _, h := range m.postHooks {
		if err := h(ctx, ident); err != nil {
			return nil, err
		}
	}

	return ident, nil
}
