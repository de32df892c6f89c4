package middleware

import (
	"strings"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/internal/session"
	"go-secadmin-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token, checks it against the user's
// current token version and status, and stores the session on the request.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		if !user.IsActive() {
			return c.Status(401).JSON(fiber.Map{"error": "Account is inactive"})
		}

		// A re-login or logout bumps the version and retires this token.
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session ended (signed in elsewhere or signed out)"})
		}

		session.Store(c, session.FromClaims(claims))
		return c.Next()
	}
}

// RequirePermission gates a route on the static role-permission table.
func RequirePermission(p model.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.FromCtx(c)
		if !sess.HasPermission(p) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + p.Token() + "' permission",
			})
		}
		return c.Next()
	}
}
