// file: internals/features/academics/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtl "sekolahku_backend/internals/features/academics/teachers/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// TeacherUserRoutes — read-only untuk semua user login.
func TeacherUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.New(db, nil) // validator nil, read-only
	g := user.Group("/teachers")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

// TeacherAdminRoutes — CRUD penuh khusus admin.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.New(db, validator.New())
	g := admin.Group("/teachers", authMw.OnlyAdmin("manajemen guru"))

	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Post("/:id/photo", ctl.UploadPhoto)
	g.Delete("/:id", ctl.Delete)
}
