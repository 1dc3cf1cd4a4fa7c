// file: internals/route/index.go
package route

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/constants"
	authMiddleware "konisurabaya_backend/internals/middlewares/auth"
	routeDetails "konisurabaya_backend/internals/route/details"
)

// SetupRoutes memasang semua route: base → public → group per role.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api/public")
	routeDetails.AuthRoutes(public, db, validate)
	routeDetails.PublicRoutes(public, db, validate)

	// ===================== ADMIN KONI =====================
	log.Println("[INFO] Setting up KONI group...")
	koni := app.Group("/api/koni",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorKoni("manajemen federasi"), constants.RoleAdminKoni),
	)
	routeDetails.KoniRoutes(koni, db, validate)

	// ===================== ADMIN CABOR =====================
	log.Println("[INFO] Setting up CABOR group...")
	cabor := app.Group("/api/cabor",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorCabor("manajemen cabor"), constants.RoleAdminCabor),
	)
	routeDetails.CaborRoutes(cabor, db, validate)

	// ===================== ADMIN CLUB =====================
	log.Println("[INFO] Setting up CLUB group...")
	club := app.Group("/api/club",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorClub("manajemen club"), constants.RoleAdminClub),
	)
	routeDetails.ClubRoutes(club, db, validate)

	// ===================== AUTH'D (role bebas) =====================
	me := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(me, db, validate)
}
