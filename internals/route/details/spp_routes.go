// file: internals/route/details/spp_routes.go
package details

import (
	sppRoute "sekolahku_backend/internals/features/finance/spp/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SppPublicRoutes(r fiber.Router, db *gorm.DB) {
	sppRoute.SppPublicRoutes(r, db)
}

func SppUserRoutes(r fiber.Router, db *gorm.DB) {
	sppRoute.SppUserRoutes(r, db)
}

func SppAdminRoutes(r fiber.Router, db *gorm.DB) {
	sppRoute.SppAdminRoutes(r, db)
}
