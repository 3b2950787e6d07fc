// file: internals/features/finance/spp/route/spp_route.go
package route

import (
	"sekolahku_backend/internals/features/finance/spp/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SppPublicRoutes: webhook Midtrans, sengaja tanpa auth.
func SppPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSppController(db)
	r.Post("/spp/notification", ctl.Notification)
}

func SppUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSppController(db)
	g := r.Group("/spp")
	g.Get("/bills", ctl.List)
	g.Post("/bills/:id/pay", ctl.Pay)
}

func SppAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSppController(db)
	g := r.Group("/spp", auth.OnlyAdmin("tagihan SPP"))
	g.Post("/bills", ctl.Create)
}
