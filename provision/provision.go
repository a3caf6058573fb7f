// Package provision creates the role-specific profile record when an
// identity is created. It is wired as a registration post-hook, so it
// runs exactly once, synchronously, after the identity row is durable.
package provision

import (
	"context"

	"go.uber.org/zap"

	"github.com/kauportal/portal/domain"
	"github.com/kauportal/portal/identity"
	"github.com/kauportal/portal/logger"
)

type Provisioner struct {
	profiles domain.ProfileStorage
}

func NewProvisioner(profiles domain.ProfileStorage) *Provisioner {
	return &Provisioner{profiles: profiles}
}

// OnIdentityCreated provisions the profile matching the identity's
// role. STUDENT and FACULTY each get-or-create their 1:1 record; ADMIN
// and an unset role provision nothing. Re-invocation is a no-op, and a
// store integrity error (a racing duplicate on the one-to-one link)
// is surfaced unchanged — no retry, no swallow.
func (p *Provisioner) OnIdentityCreated(ctx context.Context, ident *identity.Identity) error {
	switch ident.Role {
	case identity.RoleStudent:
		if err := p.profiles.EnsureStudentProfile(ctx, ident.ID); err != nil {
			return err
		}
	case identity.RoleFaculty:
		if err := p.profiles.EnsureFacultyProfile(ctx, ident.ID); err != nil {
			return err
		}
	case identity.RoleAdmin:
		// Admin identities carry no extension profile.
	default:
		// Unset role: nothing to provision.
	}

	if logger.Log != nil {
		logger.Log.Debug("profile provisioned",
			zap.String("identity_id", ident.ID.String()),
			zap.String("role", string(ident.Role)),
		)
	}
	return nil
}
