// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "sekolahku_backend/internals/features/users/auth/service"
	authRepo "sekolahku_backend/internals/features/users/auth/repository"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctl.DB, c)
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctl.DB, c)
}

func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctl.DB, c)
}

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	return authService.RefreshTokens(ctl.DB, c)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctl.DB, c)
}

func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctl.DB, c)
}

func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	return authService.ResetPassword(ctl.DB, c)
}

// Me mengembalikan profil singkat user yang sedang login.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	u, err := authRepo.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil", fiber.Map{
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"full_name": u.FullName,
		"email":     u.Email,
		"role":      u.Role,
	})
}
