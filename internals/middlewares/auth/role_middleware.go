// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// RequireRoles membatasi akses ke role tertentu (dipasang SETELAH AuthMiddleware).
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// OnlyAdmin shortcut untuk route manajemen.
func OnlyAdmin(feature string) fiber.Handler {
	return RequireRoles(feature, constants.RoleAdmin)
}

// TeacherOrAdmin untuk fitur operasional guru.
func TeacherOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range constants.TeacherAndAbove {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
	}
}
