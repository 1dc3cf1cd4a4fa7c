// file: internals/route/details/koni_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caborController "konisurabaya_backend/internals/features/federation/cabors/controller"
	invController "konisurabaya_backend/internals/features/federation/invitations/controller"
)

// KoniRoutes: fitur Admin KONI — undangan cabor + verifikasi profil cabor.
func KoniRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	invCtl := invController.NewInvitationController(db, validate)
	verifCtl := caborController.NewKoniVerificationController(db, validate)

	invitations := r.Group("/invitations")
	invitations.Post("/", invCtl.Create)
	invitations.Get("/", invCtl.List)

	cabors := r.Group("/cabors")
	cabors.Get("/", verifCtl.ListCabors)
	cabors.Get("/:id", verifCtl.GetCaborDetail)
	cabors.Patch("/:id/approve", verifCtl.ApproveCabor)
	cabors.Patch("/:id/reject", verifCtl.RejectCabor)
}
