// Package rbac gates endpoints on the identity's role. The gate itself
// is a pure predicate; the Echo middleware translates a negative answer
// into a 401 or 403 response.
package rbac

import (
	"github.com/labstack/echo/v4"

	"github.com/kauportal/portal/identity"
)

// ContextKey is where the auth middleware stores the authenticated
// identity on the request context.
const ContextKey = "identity"

// Allows reports whether ident is an authenticated identity holding
// exactly the required role. A nil identity is unauthenticated.
func Allows(ident *identity.Identity, required identity.Role) bool {
	return ident != nil && ident.Role == required
}

// IsFaculty is the standing faculty predicate.
func IsFaculty(ident *identity.Identity) bool {
	return Allows(ident, identity.RoleFaculty)
}

// IsStudent is the standing student predicate.
func IsStudent(ident *identity.Identity) bool {
	return Allows(ident, identity.RoleStudent)
}

// IdentityFrom returns the authenticated identity attached to the
// request, or nil.
func IdentityFrom(c echo.Context) *identity.Identity {
	ident, _ := c.Get(ContextKey).(*identity.Identity)
	return ident
}
