// file: internals/features/attendance/student_attendance/route/student_attendance_route.go
package route

import (
	"sekolahku_backend/internals/features/attendance/student_attendance/controller"
	"sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentAttendanceController(db)
	g := r.Group("/student-attendances")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/recap", auth.TeacherOrAdmin("rekap absensi"), ctl.Recap)
	g.Delete("/:id", auth.OnlyAdmin("koreksi absensi"), ctl.Delete)
}
