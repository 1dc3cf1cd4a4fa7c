// file: internals/features/clubs/controller/club_registration_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/constants"
	"konisurabaya_backend/internals/features/clubs/dto"
	"konisurabaya_backend/internals/features/clubs/model"
	caborController "konisurabaya_backend/internals/features/federation/cabors/controller"
	caborModel "konisurabaya_backend/internals/features/federation/cabors/model"
	userModel "konisurabaya_backend/internals/features/users/user/model"
	helper "konisurabaya_backend/internals/helpers"
)

type ClubRegistrationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClubRegistrationController(db *gorm.DB, v *validator.Validate) *ClubRegistrationController {
	return &ClubRegistrationController{DB: db, Validate: v}
}

// Register mendaftarkan admin club lewat token cabor. Cabor induk di-resolve
// dari token, bukan dari input client. Token multi-use: TIDAK dikonsumsi,
// tetap hidup sampai kadaluarsa atau di-regenerate cabor.
//
// Club baru langsung VERIFIED (di-vouch cabor penerbit token) tapi
// is_onboarded=false sampai form onboarding disubmit.
func (ctl *ClubRegistrationController) Register(c *fiber.Ctx) error {
	var req dto.RegisterClubAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	if strings.TrimSpace(req.Token) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token wajib diisi")
	}

	// Re-validasi token sebelum validasi field yang lain.
	tokenCheck := caborController.ValidateClubRegistrationToken(ctl.DB, req.Token, time.Now())
	if !tokenCheck.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, tokenCheck.Error)
	}
	caborProfileID, err := uuid.Parse(tokenCheck.CaborProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memvalidasi token.")
	}

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	username := strings.SplitN(req.Email, "@", 2)[0]

	var existing userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Pendaftaran gagal", map[string]string{
			"email": "Email sudah terdaftar.",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mendaftar. Silakan coba lagi.")
	}
	if err := ctl.DB.Where("user_username = ?", username).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mendaftar. Silakan coba lagi.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mendaftar. Silakan coba lagi.")
	}

	var club model.ClubProfileModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check token DI DALAM transaksi: cabor bisa saja regenerate
		// token di sela-sela validasi awal dan commit.
		var cabor caborModel.CaborProfileModel
		if err := tx.First(&cabor, "cabor_profile_club_token = ?", req.Token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return caborModel.ErrClubTokenExpired
			}
			return err
		}
		if err := cabor.ClubTokenUsableAt(time.Now()); err != nil {
			return err
		}

		user := userModel.UserModel{
			UserUsername:     username,
			UserEmail:        req.Email,
			UserPasswordHash: string(hash),
			UserRole:         constants.RoleAdminClub,
			UserIsActive:     true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		club = model.ClubProfileModel{
			ClubProfileUserID:             user.UserID,
			ClubProfileCaborProfileID:     caborProfileID,
			ClubProfileName:               strings.TrimSpace(req.ClubName),
			ClubProfileIsOnboarded:        false,
			ClubProfileVerificationStatus: caborModel.VerificationVerified,
		}
		return tx.Create(&club).Error
	})
	if txErr != nil {
		if errors.Is(txErr, caborModel.ErrClubTokenExpired) || errors.Is(txErr, caborModel.ErrClubTokenUnset) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token sudah kadaluarsa.")
		}
		log.Printf("[ERROR] Registrasi club gagal: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mendaftar. Silakan coba lagi.")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil. Silakan login dan lengkapi data club Anda.", fiber.Map{
		"club_profile_id": club.ClubProfileID.String(),
		"cabor_name":      tokenCheck.CaborName,
	})
}
