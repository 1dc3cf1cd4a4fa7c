// file: internals/route/details/user_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "konisurabaya_backend/internals/features/users/auth/controller"
)

// UserRoutes: endpoint akun yang butuh login, role apa pun.
func UserRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := authController.NewAuthController(db, validate)

	r.Get("/me", ctl.Me)
}
