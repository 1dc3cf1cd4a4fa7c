// file: internals/route/details/public_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	athleteController "konisurabaya_backend/internals/features/athletes/controller"
	clubController "konisurabaya_backend/internals/features/clubs/controller"
	caborController "konisurabaya_backend/internals/features/federation/cabors/controller"
	invController "konisurabaya_backend/internals/features/federation/invitations/controller"
	"konisurabaya_backend/internals/middlewares"
)

// PublicRoutes: validasi token, registrasi via token, self-check atlet.
// Tidak butuh login.
func PublicRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	invCtl := invController.NewInvitationController(db, validate)
	caborRegCtl := caborController.NewCaborRegistrationController(db, validate)
	caborTokenCtl := caborController.NewCaborTokenController(db, validate)
	clubRegCtl := clubController.NewClubRegistrationController(db, validate)
	athleteCtl := athleteController.NewAthleteController(db, validate)

	// Validasi token (halaman landing & form registrasi)
	tokens := r.Group("/tokens")
	tokens.Post("/verify", caborTokenCtl.VerifyAnyToken)
	tokens.Post("/verify-invitation", invCtl.ValidateToken)
	tokens.Post("/verify-club", caborTokenCtl.ValidateClubToken)

	// Registrasi via token (rate-limited)
	register := r.Group("/register", middlewares.RegisterRateLimiter())
	register.Post("/cabor", caborRegCtl.Register)
	register.Post("/club", clubRegCtl.Register)

	// Dropdown daftar cabor di form registrasi
	r.Get("/master-cabors", caborRegCtl.ListMasterCabors)

	// Self-check atlet: NIK + tanggal lahir
	r.Post("/athletes/self-check", athleteCtl.SelfCheck)
}
