// file: internals/features/clubs/controller/club_profile_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/clubs/dto"
	"konisurabaya_backend/internals/features/clubs/model"
	caborModel "konisurabaya_backend/internals/features/federation/cabors/model"
	helper "konisurabaya_backend/internals/helpers"
	helperAuth "konisurabaya_backend/internals/helpers/auth"
)

type ClubProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClubProfileController(db *gorm.DB, v *validator.Validate) *ClubProfileController {
	return &ClubProfileController{DB: db, Validate: v}
}

// findOwnedClub mengambil profil club milik user yang sedang login.
func findOwnedClub(db *gorm.DB, c *fiber.Ctx) (*model.ClubProfileModel, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var club model.ClubProfileModel
	if err := db.First(&club, "club_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profil club tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil club")
	}
	return &club, nil
}

// GetMyClub: profil club milik admin yang login.
func (ctl *ClubProfileController) GetMyClub(c *fiber.Ctx) error {
	club, err := findOwnedClub(ctl.DB, c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.ToClubProfileResponse(club))
}

// SubmitOnboarding menyimpan form kelengkapan organisasi club. Submit (dan
// re-submit) selalu: is_onboarded=true, status=PENDING, alasan penolakan
// lama dihapus — jadi club yang REJECTED bisa perbaiki lalu antri review lagi.
// Nama club tidak bisa diubah lewat endpoint ini.
func (ctl *ClubProfileController) SubmitOnboarding(c *fiber.Ctx) error {
	club, err := findOwnedClub(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.ClubOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	club.ClubProfileChairName = &req.ChairName
	club.ClubProfileSecretaryName = &req.SecretaryName
	club.ClubProfileBasecampAddr = &req.BasecampAddr
	club.ClubProfileTrainingSchedule = &req.TrainingSchedule
	club.ClubProfileTrainingLocation = &req.TrainingLocation

	club.ClubProfileIsOnboarded = true
	club.ClubProfileVerificationStatus = caborModel.VerificationPending
	club.ClubProfileRejectionReason = nil

	if err := ctl.DB.Save(club).Error; err != nil {
		log.Printf("[ERROR] Onboarding club gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data club")
	}

	return helper.JsonOK(c, "Data club tersimpan. Menunggu verifikasi Admin Cabor.", dto.ToClubProfileResponse(club))
}
