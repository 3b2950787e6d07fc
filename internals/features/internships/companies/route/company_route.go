// file: internals/features/internships/companies/route/company_route.go
package route

import (
	"sekolahku_backend/internals/features/internships/companies/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CompanyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db)
	g := r.Group("/companies")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func CompanyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db)
	g := r.Group("/companies", auth.OnlyAdmin("kelola perusahaan"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
