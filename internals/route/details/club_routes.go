// file: internals/route/details/club_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	athleteController "konisurabaya_backend/internals/features/athletes/controller"
	clubController "konisurabaya_backend/internals/features/clubs/controller"
)

// ClubRoutes: fitur Admin Club — profil + onboarding + manajemen atlet.
func ClubRoutes(r fiber.Router, db *gorm.DB, validate *validator.Validate) {
	profileCtl := clubController.NewClubProfileController(db, validate)
	athleteCtl := athleteController.NewAthleteController(db, validate)
	importCtl := athleteController.NewAthleteImportController(db)

	profile := r.Group("/profile")
	profile.Get("/", profileCtl.GetMyClub)
	profile.Post("/onboarding", profileCtl.SubmitOnboarding)

	athletes := r.Group("/athletes")
	athletes.Get("/", athleteCtl.List)
	athletes.Post("/", athleteCtl.Create)
	athletes.Post("/import", importCtl.Import)
	athletes.Put("/:id", athleteCtl.Update)
	athletes.Delete("/:id", athleteCtl.Delete)
	athletes.Get("/:id/achievements", athleteCtl.ListAchievements)
}
