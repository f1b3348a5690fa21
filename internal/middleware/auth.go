package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
)

const ContextPrincipal = "principal"

type TokenParser interface {
	Parse(raw string) (identity.Principal, error)
}

// RoleSource returns the role currently stored for a user. A token only
// proves identity; the role it carries may be stale.
type RoleSource interface {
	UserRole(ctx context.Context, id uuid.UUID) (string, error)
}

// withStoredRole replaces the token's role with the stored one when roles
// is set.
func withStoredRole(c *gin.Context, roles RoleSource, p identity.Principal) (identity.Principal, error) {
	if roles == nil {
		return p, nil
	}
	role, err := roles.UserRole(c.Request.Context(), p.UserID)
	if err != nil {
		return identity.Principal{}, err
	}
	p.Role = identity.Role(role)
	return p, nil
}

func bearer(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func AuthMiddleware(tokens TokenParser, roles RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Unauthorized(c, "missing_token", "Authorization header is missing.")
			return
		}

		raw, ok := bearer(c)
		if !ok {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			return
		}

		p, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			return
		}

		p, err = withStoredRole(c, roles, p)
		if httperr.IsNotFound(err) {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			return
		}
		if err != nil {
			httperr.From(c, err)
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is sent and lets
// anonymous requests through untouched.
func OptionalAuth(tokens TokenParser, roles RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearer(c); ok {
			if p, err := tokens.Parse(raw); err == nil {
				if p, err = withStoredRole(c, roles, p); err == nil {
					c.Set(ContextPrincipal, p)
				}
			}
		}
		c.Next()
	}
}

// PrincipalFrom returns the zero Principal for anonymous requests.
func PrincipalFrom(c *gin.Context) (identity.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return identity.Principal{}, false
	}
	p, ok := v.(identity.Principal)
	return p, ok
}

func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing_token", "Authorization header is missing.")
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		code := "owner_role_required"
		if len(roles) == 1 && roles[0] == identity.RoleAdmin {
			code = "admin_role_required"
		}
		httperr.Forbidden(c, code, "You do not have access to this resource.")
	}
}
