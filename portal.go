// Package portal wires the default component stack: gorm-backed
// storage, bcrypt-hashed password registration with profile
// provisioning, and database-backed sessions.
package portal

import (
	"time"

	"github.com/kauportal/portal/flow"
	"github.com/kauportal/portal/persistence"
	"github.com/kauportal/portal/provision"
	"github.com/kauportal/portal/session"
)

// NewRegistrationManager builds the registration flow with the profile
// provisioner attached as its post-creation hook.
func NewRegistrationManager(repo *persistence.Repository, hasher *flow.BcryptHasher) *flow.RegistrationManager {
	reg := flow.NewRegistrationManager(repo, hasher)
	prov := provision.NewProvisioner(repo)
	reg.AddPostHook(prov.OnIdentityCreated)
	return reg
}

// NewLoginManager builds the login flow against the same store.
func NewLoginManager(repo *persistence.Repository, hasher *flow.BcryptHasher) *flow.LoginManager {
	return flow.NewLoginManager(repo, hasher)
}

// NewSessionManager builds the session manager.
func NewSessionManager(repo *persistence.Repository, secret string, ttl time.Duration) *session.Manager {
	return session.NewManager(repo, []byte(secret), ttl)
}
