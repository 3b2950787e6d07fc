// file: internals/features/academics/teaching_journals/route/teaching_journal_route.go
package route

import (
	"sekolahku_backend/internals/features/academics/teaching_journals/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Jurnal dibuat oleh guru, dibaca semua user login.
func TeachingJournalUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeachingJournalController(db)
	g := r.Group("/teaching-journals")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
}

func TeachingJournalTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeachingJournalController(db)
	g := r.Group("/teaching-journals", auth.TeacherOrAdmin("jurnal KBM"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
