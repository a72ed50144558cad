package middleware // middleware provides shared request processing for handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/auth"
)

// authPrefix is the expected Authorization header scheme.
const authPrefix = "Bearer "

// claimsKey is the context key the parsed claims are stored under.
const claimsKey = "auth_claims"

// TokenParser verifies a raw token string and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireAuth returns middleware that admits any request carrying a
// valid, unexpired bearer token. The parsed claims are stored in the
// context for handlers that need the caller's identity; see
// CurrentClaims. A missing Bearer prefix or a failed parse surfaces as
// an authentication failure.
func RequireAuth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseBearer(tokens, c)
			if err != nil {
				return err
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequirePermission returns middleware that additionally requires the
// named permission to appear in the token's permission set. A valid
// caller without the permission is rejected with an authorization
// failure, distinct from the authentication failure an invalid token
// produces.
func RequirePermission(tokens TokenParser, permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseBearer(tokens, c)
			if err != nil {
				return err
			}
			if !claims.HasPermission(permission) {
				return apperr.ErrUnauthorized
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// CurrentClaims returns the claims stored by RequireAuth or
// RequirePermission, or nil when the route is not guarded.
func CurrentClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}

func parseBearer(tokens TokenParser, c echo.Context) (*auth.Claims, error) {
	header := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(header, authPrefix) {
		return nil, apperr.ErrUnauthenticated
	}
	return tokens.Parse(strings.TrimPrefix(header, authPrefix))
}
