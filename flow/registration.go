// Package flow implements the identity creation and login contracts.
// Registration runs its post-hooks synchronously after the identity row
// is durably created, which is how the profile provisioner is invoked.
package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kauportal/portal/domain"
	"github.com/kauportal/portal/identity"
)

// Hook runs before or after a flow action.
type Hook func(ctx context.Context, ident *identity.Identity) error

// RegistrationInput is the identity-creation contract.
type RegistrationInput struct {
	Email       string
	Password    string
	Username    string
	KauID       *int64
	Role        identity.Role
	IsStaff     bool
	IsSuperuser bool
}

type RegistrationManager struct {
	store     domain.IdentityStorage
	hasher    domain.Hasher
	generator domain.IDGenerator
	preHooks  []Hook
	postHooks []Hook
}

func NewRegistrationManager(store domain.IdentityStorage, hasher domain.Hasher) *RegistrationManager {
	return &RegistrationManager{
		store:     store,
		hasher:    hasher,
		generator: uuid.New,
	}
}

func (m *RegistrationManager) SetIDGenerator(g domain.IDGenerator) { m.generator = g }

func (m *RegistrationManager) AddPreHook(h Hook)  { m.preHooks = append(m.preHooks, h) }
func (m *RegistrationManager) AddPostHook(h Hook) { m.postHooks = append(m.postHooks, h) }

// Register creates an identity. Validation order: email presence,
// kau_id presence for non-staff, email normalization, username
// derivation. The plaintext password is hashed before the record is
// built and is never stored. Post-hooks run synchronously after the
// insert and before returning; a hook error aborts the call.
func (m *RegistrationManager) Register(ctx context.Context, in RegistrationInput) (*identity.Identity, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("registration: %w", domain.ErrEmailRequired)
	}
	if in.KauID == nil && !in.IsStaff {
		return nil, fmt.Errorf("registration: %w", domain.ErrKauIDRequired)
	}

	email := NormalizeEmail(in.Email)

	username := in.Username
	if username == "" {
		username = email
		if at := strings.Index(email, "@"); at >= 0 {
			username = email[:at]
		}
	}

	for _, h := range m.preHooks {
		if err := h(ctx, nil); err != nil {
			return nil, err
		}
	}

	hashed, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	ident := &identity.Identity{
		ID:           m.generator(),
		Email:        email,
		KauID:        in.KauID,
		Username:     username,
		PasswordHash: hashed,
		Role:         in.Role,
		IsStaff:      in.IsStaff,
		IsSuperuser:  in.IsSuperuser,
	}

	if err := m.store.CreateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	for _, h := range m.postHooks {
		if err := h(ctx, ident); err != nil {
			return nil, err
		}
	}

	return ident, nil
}

// RegisterSuperuser forces the staff and superuser flags and clears
// kau_id regardless of caller input, then delegates to Register.
func (m *RegistrationManager) RegisterSuperuser(ctx context.Context, in RegistrationInput) (*identity.Identity, error) {
	in.IsStaff = true
	in.IsSuperuser = true
	in.KauID = nil
	return m.Register(ctx, in)
}

// NormalizeEmail lower-cases the domain portion of the address. The
// local part is preserved as given. An address without '@' is returned
// unchanged; it will fail downstream lookups rather than panic here.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
