// file: internals/features/attendance/teacher_attendance/route/teacher_attendance_route.go
package route

import (
	"sekolahku_backend/internals/features/attendance/teacher_attendance/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TeacherAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherAttendanceController(db)
	g := r.Group("/teacher-attendances")
	g.Post("/", auth.TeacherOrAdmin("absensi guru"), ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/recap", ctl.Recap)
	g.Delete("/:id", auth.OnlyAdmin("koreksi absensi"), ctl.Delete)
}
