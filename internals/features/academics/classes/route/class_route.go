// file: internals/features/academics/classes/route/class_route.go
package route

import (
	"sekolahku_backend/internals/features/academics/classes/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassUserRoutes: read-only untuk semua user login.
func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)
	g := r.Group("/classes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

// ClassAdminRoutes: CRUD penuh, admin saja.
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)
	g := r.Group("/classes", auth.OnlyAdmin("kelola kelas"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
