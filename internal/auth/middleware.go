package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/model"
)

const (
	msgNoToken      = "No token provided."
	msgTokenInvalid = "token invalid."
)

// ErrRevocationDisabled is returned by Revoke when no revocation store is configured.
var ErrRevocationDisabled = errors.New("token revocation is not configured")

// UserFinder resolves token identities to users.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Authenticator authenticates requests carrying a token in the Authorization header.
type Authenticator struct {
	tokens  *TokenService
	users   UserFinder
	revoked RevocationStore
}

// NewAuthenticator creates an authenticator. revoked may be nil, in which
// case tokens are never checked for revocation.
func NewAuthenticator(tokens *TokenService, users UserFinder, revoked RevocationStore) *Authenticator {
	return &Authenticator{
		tokens:  tokens,
		users:   users,
		revoked: revoked,
	}
}

// Middleware rejects requests without a valid token for an existing user and
// attaches the Principal for downstream handlers. The header value is passed
// to verification as-is.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return a.tokens.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, msgNoToken)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, msgTokenInvalid).SetInternal(err)
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(a.resolve(next))
	}
}

func (a *Authenticator) resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsKey).(*Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, msgTokenInvalid)
		}
		raw := c.Request().Header.Get(echo.HeaderAuthorization)
		ctx := c.Request().Context()

		if a.revoked != nil {
			revoked, err := a.revoked.IsRevoked(ctx, raw)
			if err != nil {
				c.Logger().Errorf("revocation lookup: %v", err)
				return echo.NewHTTPError(http.StatusUnauthorized, msgTokenInvalid)
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, msgTokenInvalid)
			}
		}

		user, err := a.users.FindByID(ctx, claims.ID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUserNotFound) {
				c.Logger().Errorf("resolve token user %d: %v", claims.ID, err)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, msgTokenInvalid)
		}

		c.Set(principalKey, &Principal{user: *user, claims: *claims, token: raw})
		return next(c)
	}
}

// Revoke invalidates the principal's token. The revocation lasts as long as
// the token would have.
func (a *Authenticator) Revoke(ctx context.Context, p *Principal) error {
	if a.revoked == nil {
		return ErrRevocationDisabled
	}
	var ttl time.Duration
	if exp := p.claims.ExpiresAt; exp != nil {
		ttl = time.Until(exp.Time)
		if ttl <= 0 {
			return nil
		}
	}
	return a.revoked.Revoke(ctx, p.token, ttl)
}
