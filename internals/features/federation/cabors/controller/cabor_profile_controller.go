// file: internals/features/federation/cabors/controller/cabor_profile_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/federation/cabors/dto"
	"konisurabaya_backend/internals/features/federation/cabors/model"
	helper "konisurabaya_backend/internals/helpers"
	helperAuth "konisurabaya_backend/internals/helpers/auth"
)

type CaborProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCaborProfileController(db *gorm.DB, v *validator.Validate) *CaborProfileController {
	return &CaborProfileController{DB: db, Validate: v}
}

// findOwnedProfile mengambil profil cabor milik user yang sedang login.
func findOwnedProfile(db *gorm.DB, c *fiber.Ctx) (*model.CaborProfileModel, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var profile model.CaborProfileModel
	if err := db.Preload("MasterCabor").
		First(&profile, "cabor_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profil cabor tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return &profile, nil
}

// GetMyProfile: profil cabor milik admin yang login.
func (ctl *CaborProfileController) GetMyProfile(c *fiber.Ctx) error {
	profile, err := findOwnedProfile(ctl.DB, c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.ToCaborProfileResponse(profile))
}

// UpdateMyProfile mengedit profil cabor. Perubahan file SK atau masa
// berlakunya pada profil VERIFIED/REJECTED menjatuhkan status kembali ke
// PENDING (verifikasi ulang); edit field lain tidak menyentuh status.
func (ctl *CaborProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	profile, err := findOwnedProfile(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.UpdateCaborProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	newStart, err := parseSKDate(req.SKStartDate, profile.CaborProfileSKStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal SK tidak valid")
	}
	newEnd, err := parseSKDate(req.SKEndDate, profile.CaborProfileSKEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal SK tidak valid")
	}

	// Keputusan re-verifikasi diambil SEBELUM field lama ditimpa.
	reverify := profile.ShouldReverify(req.SKFileURL, newStart, newEnd)

	applyProfileUpdate(profile, &req, newStart, newEnd)

	if reverify {
		profile.CaborProfileVerificationStatus = model.VerificationPending
		profile.CaborProfileRejectionReason = nil
	}

	if err := ctl.DB.Save(profile).Error; err != nil {
		log.Printf("[ERROR] Update profil cabor gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	msg := "Profil berhasil diperbarui"
	if reverify {
		msg = "Profil diperbarui. Dokumen SK berubah, profil Anda menunggu verifikasi ulang Admin KONI."
	}
	return helper.JsonOK(c, msg, dto.ToCaborProfileResponse(profile))
}

// parseSKDate: nil = tidak dikirim (pertahankan nilai lama).
func parseSKDate(raw *string, old *time.Time) (*time.Time, error) {
	if raw == nil {
		return old, nil
	}
	if *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func applyProfileUpdate(p *model.CaborProfileModel, req *dto.UpdateCaborProfileRequest, newStart, newEnd *time.Time) {
	if req.Description != nil {
		p.CaborProfileDescription = req.Description
	}
	if req.SecretariatAddr != nil {
		p.CaborProfileSecretariatAddr = req.SecretariatAddr
	}
	if req.OfficialEmail != nil {
		p.CaborProfileOfficialEmail = req.OfficialEmail
	}
	if req.Phone != nil {
		p.CaborProfilePhone = req.Phone
	}

	if req.FacebookURL != nil {
		p.CaborProfileFacebookURL = req.FacebookURL
	}
	if req.InstagramURL != nil {
		p.CaborProfileInstagramURL = req.InstagramURL
	}
	if req.WebsiteURL != nil {
		p.CaborProfileWebsiteURL = req.WebsiteURL
	}
	if req.YoutubeURL != nil {
		p.CaborProfileYoutubeURL = req.YoutubeURL
	}

	if req.OrgStructure != nil {
		p.CaborProfileOrgStructure = req.OrgStructure
	}
	if req.Facilities != nil {
		p.CaborProfileFacilities = req.Facilities
	}
	if req.TrainingSchedule != nil {
		if js, err := dto.ScheduleToJSON(req.TrainingSchedule); err == nil {
			p.CaborProfileTrainingSchedule = js
		}
	}
	if req.TrainingLocation != nil {
		p.CaborProfileTrainingLocation = req.TrainingLocation
	}
	if req.DevProgram != nil {
		p.CaborProfileDevProgram = req.DevProgram
	}
	if req.Achievements != nil {
		p.CaborProfileAchievements = req.Achievements
	}

	p.CaborProfileTotalReferees = req.TotalReferees
	p.CaborProfileTotalCoaches = req.TotalCoaches
	p.CaborProfileTotalAthletesManual = req.TotalAthletesManual

	// URL dokumen kosong = file lama dipertahankan.
	if req.SKFileURL != "" {
		url := req.SKFileURL
		p.CaborProfileSKFileURL = &url
		if req.SKFileName != "" {
			name := req.SKFileName
			p.CaborProfileSKFileName = &name
		}
	}
	p.CaborProfileSKStartDate = newStart
	p.CaborProfileSKEndDate = newEnd

	if req.ADARTFileURL != "" {
		url := req.ADARTFileURL
		p.CaborProfileADARTFileURL = &url
		if req.ADARTFileName != "" {
			name := req.ADARTFileName
			p.CaborProfileADARTFileName = &name
		}
	}
}
