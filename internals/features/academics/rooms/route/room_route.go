// file: internals/features/academics/rooms/route/room_route.go
package route

import (
	"sekolahku_backend/internals/features/academics/rooms/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RoomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)
	g := r.Group("/rooms")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)
	g := r.Group("/rooms", auth.OnlyAdmin("kelola ruangan"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
