// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "konisurabaya_backend/internals/features/users/auth/controller"
	"konisurabaya_backend/internals/middlewares"
)

// AuthRoutes: login (rate-limited) + logout, di bawah group public.
func AuthRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := authController.NewAuthController(db, validate)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/logout", ctl.Logout)
}
