// Package session carries the authenticated principal for one request. A
// Session value is built from validated token claims by the auth middleware
// and injected into the request context; handlers never touch claims or any
// global user state directly.
package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/pkg/jwt"
)

const localsKey = "session"

// Session identifies the current user, or nobody. The zero value is the
// anonymous session.
type Session struct {
	UserID   uuid.UUID
	Email    string
	Name     string
	RoleCode string

	authenticated bool
}

// Anonymous is the unauthenticated session. Every permission check on it
// returns false.
func Anonymous() Session {
	return Session{}
}

// FromClaims builds an authenticated session out of validated JWT claims.
func FromClaims(claims *jwt.Claims) Session {
	return Session{
		UserID:        claims.UserID,
		Email:         claims.Email,
		Name:          claims.Name,
		RoleCode:      claims.RoleCode,
		authenticated: true,
	}
}

// IsAuthenticated reports whether a user is behind this session.
func (s Session) IsAuthenticated() bool {
	return s.authenticated
}

// HasPermission answers "is this action permitted for the current user" via
// the static role table. Anonymous sessions are denied everything.
func (s Session) HasPermission(p model.Permission) bool {
	if !s.authenticated {
		return false
	}
	return model.RoleHasPermission(s.RoleCode, p)
}

// Store saves the session on the request for downstream handlers.
func Store(c *fiber.Ctx, s Session) {
	c.Locals(localsKey, s)
}

// FromCtx returns the request's session, or the anonymous session when the
// auth middleware did not run.
func FromCtx(c *fiber.Ctx) Session {
	if s, ok := c.Locals(localsKey).(Session); ok {
		return s
	}
	return Anonymous()
}
