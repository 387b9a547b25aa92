package auth

import (
	"github.com/labstack/echo/v4"

	"htmxtodo/internal/model"
)

const (
	claimsKey    = "auth.claims"
	principalKey = "auth.principal"
)

// Principal is the authenticated caller of a request. Its fields are
// unexported so only the auth middleware can produce one.
type Principal struct {
	user   model.User
	claims Claims
	token  string
}

// User returns the resolved user record.
func (p *Principal) User() model.User { return p.user }

// UserID returns the user's ID.
func (p *Principal) UserID() uint { return p.user.ID }

// RoleID returns the user's role, or nil when the user has none.
func (p *Principal) RoleID() *uint { return p.user.RoleID }

// Claims returns the verified token claims.
func (p *Principal) Claims() Claims { return p.claims }

// Token returns the raw token presented with the request.
func (p *Principal) Token() string { return p.token }

// PrincipalFrom returns the principal attached by the auth middleware.
func PrincipalFrom(c echo.Context) (*Principal, bool) {
	p, ok := c.Get(principalKey).(*Principal)
	return p, ok && p != nil
}
