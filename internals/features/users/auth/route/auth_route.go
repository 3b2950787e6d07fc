// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan endpoint auth (public + private).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.New(db)

	pub := app.Group("/api/auth")
	pub.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	pub.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	pub.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	pub.Post("/refresh", ctl.Refresh)

	priv := app.Group("/api/auth", authMw.AuthMiddleware(db))
	priv.Get("/me", ctl.Me)
	priv.Post("/logout", ctl.Logout)
	priv.Post("/change-password", ctl.ChangePassword)
	priv.Post("/reset-password", authMw.OnlyAdmin("reset password"), ctl.ResetPassword)
}
