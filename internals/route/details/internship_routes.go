// file: internals/route/details/internship_routes.go
package details

import (
	companyRoute "sekolahku_backend/internals/features/internships/companies/route"
	placementRoute "sekolahku_backend/internals/features/internships/placements/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InternshipUserRoutes(r fiber.Router, db *gorm.DB) {
	companyRoute.CompanyUserRoutes(r, db)
	placementRoute.PlacementUserRoutes(r, db)
}

func InternshipAdminRoutes(r fiber.Router, db *gorm.DB) {
	companyRoute.CompanyAdminRoutes(r, db)
	placementRoute.PlacementAdminRoutes(r, db)
}
