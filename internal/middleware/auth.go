package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/auth"
	"github.com/support-portal/backend/internal/config"
)

const CtxIdentity = "identity"

func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxIdentity, auth.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// GetIdentity returns the authenticated actor, or the anonymous identity on
// routes that never passed AuthMiddleware.
func GetIdentity(c *fiber.Ctx) auth.Identity {
	id, ok := c.Locals(CtxIdentity).(auth.Identity)
	if !ok {
		return auth.Anonymous
	}
	return id
}

// RequireCapability gates a route on one rbac capability.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetIdentity(c).Can(capability) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
