package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "htmxtodo/internal/errors"
)

// PermissionChecker answers whether a role grants an action.
type PermissionChecker interface {
	HasPermission(ctx context.Context, roleID uint, action string) (bool, error)
}

// Gate authorizes authenticated requests by role permission.
type Gate struct {
	authn *Authenticator
	perms PermissionChecker
}

// NewGate creates a gate that authenticates with authn and authorizes with perms.
func NewGate(authn *Authenticator, perms PermissionChecker) *Gate {
	return &Gate{authn: authn, perms: perms}
}

// Protect returns the middleware chain for a route: authentication, then one
// permission check per action.
func (g *Gate) Protect(actions ...string) []echo.MiddlewareFunc {
	chain := make([]echo.MiddlewareFunc, 0, len(actions)+1)
	chain = append(chain, g.authn.Middleware())
	for _, action := range actions {
		chain = append(chain, g.Require(action))
	}
	return chain
}

// Require rejects requests whose user role does not grant action. Without a
// principal on the context the request is treated as unauthenticated.
func (g *Gate) Require(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgNoToken)
			}

			denied := apperrors.MapErrorToHTTP(apperrors.PermissionDenied(action))
			roleID := p.RoleID()
			if roleID == nil {
				return echo.NewHTTPError(denied.StatusCode, denied.ToErrorResponse())
			}

			allowed, err := g.perms.HasPermission(c.Request().Context(), *roleID, action)
			if err != nil {
				c.Logger().Errorf("permission lookup %q for role %d: %v", action, *roleID, err)
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInternal)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !allowed {
				return echo.NewHTTPError(denied.StatusCode, denied.ToErrorResponse())
			}
			return next(c)
		}
	}
}
