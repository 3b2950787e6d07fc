// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "sekolahku_backend/internals/features/users/user/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// UserAdminRoutes — manajemen akun hanya untuk admin.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userCtl.New(db, validator.New())
	g := admin.Group("/users", authMw.OnlyAdmin("manajemen user"))

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
