// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Locals yang diisi oleh auth middleware setelah JWT valid.
const (
	LocalsUserID   = "user_id"
	LocalsRole     = "role"
	LocalsUserName = "user_name"
)

// GetUserID ambil user_id dari Locals (diset middleware).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocalsUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak dikenal")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id invalid")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsRole).(string); ok {
		return v
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleStudent }

// IsStaff: admin atau teacher.
func IsStaff(c *fiber.Ctx) bool {
	r := GetRole(c)
	return r == constants.RoleAdmin || r == constants.RoleTeacher
}
