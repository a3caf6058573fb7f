package rbac

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kauportal/portal/identity"
)

// RequireRole returns an Echo middleware requiring the authenticated
// identity to hold exactly the given role. It expects the auth
// middleware to have stored the identity under ContextKey.
func RequireRole(role identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !Allows(ident, role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden: missing required role")
			}
			return next(c)
		}
	}
}

// RequireStaff returns an Echo middleware requiring a staff account.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !ident.IsStaff {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden: staff only")
			}
			return next(c)
		}
	}
}
