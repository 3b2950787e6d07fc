// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"sekolahku_backend/internals/features/academics/subjects/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)
	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)
	g := r.Group("/subjects", auth.OnlyAdmin("kelola mapel"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
