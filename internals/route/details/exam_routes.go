// file: internals/route/details/exam_routes.go
package details

import (
	examRoute "sekolahku_backend/internals/features/exams/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExamRoutes(r fiber.Router, db *gorm.DB) {
	examRoute.ExamUserRoutes(r, db)
	examRoute.ExamTeacherRoutes(r, db)
}
