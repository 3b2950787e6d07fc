// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	authMw "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (webhook pembayaran)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.SppPublicRoutes(public, db)

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware(db))

	// ADMIN → JWT + pembatasan role per route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicUserRoutes(private, db)
	routeDetails.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(private, db)

	log.Println("[INFO] Mounting Internship routes...")
	routeDetails.InternshipUserRoutes(private, db)
	routeDetails.InternshipAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Exam routes...")
	routeDetails.ExamRoutes(private, db)

	log.Println("[INFO] Mounting SPP routes...")
	routeDetails.SppUserRoutes(private, db)
	routeDetails.SppAdminRoutes(admin, db)
}
