// file: internals/route/details/cabor_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubController "konisurabaya_backend/internals/features/clubs/controller"
	caborController "konisurabaya_backend/internals/features/federation/cabors/controller"
)

// CaborRoutes: fitur Admin Cabor — profil sendiri, token club, verifikasi club.
func CaborRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	profileCtl := caborController.NewCaborProfileController(db, validate)
	tokenCtl := caborController.NewCaborTokenController(db, validate)
	clubVerifCtl := clubController.NewClubVerificationController(db, validate)

	profile := r.Group("/profile")
	profile.Get("/", profileCtl.GetMyProfile)
	profile.Put("/", profileCtl.UpdateMyProfile)

	r.Post("/club-token", tokenCtl.IssueClubToken)

	clubs := r.Group("/clubs")
	clubs.Get("/", clubVerifCtl.ListMyClubs)
	clubs.Get("/:id", clubVerifCtl.GetClubDetail)
	clubs.Patch("/:id/approve", clubVerifCtl.ApproveClub)
	clubs.Patch("/:id/reject", clubVerifCtl.RejectClub)
}
