// file: internals/features/internships/placements/route/placement_route.go
package route

import (
	"sekolahku_backend/internals/features/internships/placements/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PlacementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPlacementController(db)
	g := r.Group("/placements")
	g.Get("/queue", ctl.QueuePosition)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func PlacementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPlacementController(db)
	g := r.Group("/placements", auth.TeacherOrAdmin("kelola penempatan"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", auth.OnlyAdmin("hapus penempatan"), ctl.Delete)
}
