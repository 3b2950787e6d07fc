// file: internals/route/details/academic_routes.go
package details

import (
	classRoute "sekolahku_backend/internals/features/academics/classes/route"
	roomRoute "sekolahku_backend/internals/features/academics/rooms/route"
	scheduleRoute "sekolahku_backend/internals/features/academics/schedules/route"
	studentRoute "sekolahku_backend/internals/features/academics/students/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subjects/route"
	teacherRoute "sekolahku_backend/internals/features/academics/teachers/route"
	journalRoute "sekolahku_backend/internals/features/academics/teaching_journals/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AcademicUserRoutes: akses baca untuk semua user login.
func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherUserRoutes(r, db)
	studentRoute.StudentUserRoutes(r, db)
	classRoute.ClassUserRoutes(r, db)
	subjectRoute.SubjectUserRoutes(r, db)
	roomRoute.RoomUserRoutes(r, db)
	scheduleRoute.ScheduleUserRoutes(r, db)
	journalRoute.TeachingJournalUserRoutes(r, db)
	journalRoute.TeachingJournalTeacherRoutes(r, db)
}

// AcademicAdminRoutes: operasi tulis data master.
func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
	classRoute.ClassAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	roomRoute.RoomAdminRoutes(r, db)
	scheduleRoute.ScheduleAdminRoutes(r, db)
}
