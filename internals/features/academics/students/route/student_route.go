// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "sekolahku_backend/internals/features/academics/students/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// StudentUserRoutes — read-only untuk user login (guru melihat siswa dsb).
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := studentCtl.New(db, nil)
	g := user.Group("/students")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

// StudentAdminRoutes — CRUD penuh khusus admin.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentCtl.New(db, validator.New())
	g := admin.Group("/students", authMw.OnlyAdmin("manajemen siswa"))

	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Post("/:id/photo", ctl.UploadPhoto)
	g.Delete("/:id", ctl.Delete)
}
