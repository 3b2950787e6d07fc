// file: internals/route/details/attendance_routes.go
package details

import (
	studentAttRoute "sekolahku_backend/internals/features/attendance/student_attendance/route"
	teacherAttRoute "sekolahku_backend/internals/features/attendance/teacher_attendance/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	teacherAttRoute.TeacherAttendanceRoutes(r, db)
	studentAttRoute.StudentAttendanceRoutes(r, db)
}
