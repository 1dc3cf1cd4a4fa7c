// file: internals/features/federation/cabors/controller/cabor_token_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/federation/cabors/dto"
	"konisurabaya_backend/internals/features/federation/cabors/model"
	invController "konisurabaya_backend/internals/features/federation/invitations/controller"
	helper "konisurabaya_backend/internals/helpers"
)

// Masa berlaku token pendaftaran club: 7 hari sejak diterbitkan.
const clubTokenTTL = 7 * 24 * time.Hour

const clubTokenRetryBudget = 3

type CaborTokenController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCaborTokenController(db *gorm.DB, v *validator.Validate) *CaborTokenController {
	return &CaborTokenController{DB: db, Validate: v}
}

// IssueClubToken menerbitkan (atau menimpa) token pendaftaran club untuk
// cabor milik admin yang login. Prasyarat: profil VERIFIED + dokumen SK dan
// AD/ART lengkap. Token lama langsung mati begitu tertimpa.
func (ctl *CaborTokenController) IssueClubToken(c *fiber.Ctx) error {
	profile, err := findOwnedProfile(ctl.DB, c)
	if err != nil {
		return err
	}

	if err := profile.CanIssueClubToken(); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	prefix := clubTokenPrefix(profile)

	var dbErr error
	for attempt := 1; attempt <= clubTokenRetryBudget; attempt++ {
		token := helper.GenerateToken(prefix)
		expiresAt := helper.ExpiryFromNow(clubTokenTTL)

		dbErr = ctl.DB.Model(&model.CaborProfileModel{}).
			Where("cabor_profile_id = ?", profile.CaborProfileID).
			Updates(map[string]interface{}{
				"cabor_profile_club_token":            token,
				"cabor_profile_club_token_expires_at": expiresAt,
			}).Error
		if dbErr == nil {
			profile.CaborProfileClubToken = &token
			profile.CaborProfileClubTokenExpiresAt = &expiresAt
			break
		}
		if helper.IsUniqueViolation(dbErr) {
			log.Printf("[WARNING] Token club bentrok (%s), retry %d/%d", token, attempt, clubTokenRetryBudget)
			continue
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token. Silakan coba lagi.")
	}
	if dbErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token unik. Silakan coba lagi.")
	}

	return helper.JsonOK(c, "Token pendaftaran club berhasil dibuat", fiber.Map{
		"club_token":            profile.CaborProfileClubToken,
		"club_token_expires_at": profile.CaborProfileClubTokenExpiresAt,
	})
}

// clubTokenPrefix: kata pertama nama cabor sebagai prefix token, biar token
// yang beredar ke club kebaca asalnya (mis. "RENANG-7K2M").
func clubTokenPrefix(p *model.CaborProfileModel) string {
	if p.MasterCabor != nil {
		if fields := strings.Fields(p.MasterCabor.MasterCaborName); len(fields) > 0 {
			return fields[0]
		}
	}
	return "CABOR"
}

// ValidateClubToken mengecek token pendaftaran club (public, dipakai halaman
// registrasi club).
func (ctl *CaborTokenController) ValidateClubToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp := ValidateClubRegistrationToken(ctl.DB, req.Token, time.Now())
	return helper.JsonOK(c, "OK", resp)
}

// ValidateClubRegistrationToken dipakai ulang oleh alur registrasi club
// (re-validasi di dalam transaksi pendaftaran).
func ValidateClubRegistrationToken(db *gorm.DB, token string, now time.Time) dto.ClubTokenValidationResponse {
	var profile model.CaborProfileModel
	if err := db.Preload("MasterCabor").
		First(&profile, "cabor_profile_club_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClubTokenValidationResponse{Valid: false, Error: "Token tidak ditemukan."}
		}
		return dto.ClubTokenValidationResponse{Valid: false, Error: "Gagal memvalidasi token."}
	}

	if err := profile.ClubTokenUsableAt(now); err != nil {
		return dto.ClubTokenValidationResponse{Valid: false, Error: "Token sudah kadaluarsa."}
	}

	resp := dto.ClubTokenValidationResponse{
		Valid:          true,
		CaborProfileID: profile.CaborProfileID.String(),
	}
	if profile.MasterCabor != nil {
		resp.CaborName = profile.MasterCabor.MasterCaborName
	}
	return resp
}

// VerifyAnyToken: klasifikasi gabungan untuk satu kolom input token di
// landing page. Dicoba sebagai undangan KONI dulu, lalu token club; balikan
// menyertakan tipe + URL form tujuan.
func (ctl *CaborTokenController) VerifyAnyToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()

	if inv := invController.ValidateInvitationToken(ctl.DB, req.Token, now); inv.Valid {
		return helper.JsonOK(c, "OK", fiber.Map{
			"valid":        true,
			"type":         "CABOR",
			"redirect_url": "/register/cabor?token=" + req.Token,
		})
	}

	if club := ValidateClubRegistrationToken(ctl.DB, req.Token, now); club.Valid {
		return helper.JsonOK(c, "OK", fiber.Map{
			"valid":        true,
			"type":         "CLUB",
			"cabor_name":   club.CaborName,
			"redirect_url": "/register/club?token=" + req.Token,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"valid": false,
		"error": "Token tidak valid atau sudah kadaluarsa.",
	})
}
