// file: internals/features/academics/schedules/route/schedule_route.go
package route

import (
	"sekolahku_backend/internals/features/academics/schedules/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)
	g := r.Group("/schedules")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)
	g := r.Group("/schedules", auth.OnlyAdmin("kelola jadwal"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
