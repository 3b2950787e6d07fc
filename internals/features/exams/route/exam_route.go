// file: internals/features/exams/route/exam_route.go
package route

import (
	"sekolahku_backend/internals/features/exams/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExamUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamController(db)
	g := r.Group("/exams")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
	g.Get("/:id/scores", ctl.ListScores)
}

func ExamTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamController(db)
	g := r.Group("/exams", auth.TeacherOrAdmin("kelola ujian"))
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Put("/:id/scores", ctl.UpsertScore)
	g.Delete("/:id", auth.OnlyAdmin("hapus ujian"), ctl.Delete)
}
