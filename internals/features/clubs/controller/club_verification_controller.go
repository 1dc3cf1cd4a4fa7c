// file: internals/features/clubs/controller/club_verification_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/clubs/dto"
	"konisurabaya_backend/internals/features/clubs/model"
	caborModel "konisurabaya_backend/internals/features/federation/cabors/model"
	helper "konisurabaya_backend/internals/helpers"
	helperAuth "konisurabaya_backend/internals/helpers/auth"
)

// ClubVerificationController: review club oleh Admin Cabor. Setiap operasi
// dibatasi ke club di bawah cabor milik admin yang login.
type ClubVerificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClubVerificationController(db *gorm.DB, v *validator.Validate) *ClubVerificationController {
	return &ClubVerificationController{DB: db, Validate: v}
}

// callerCaborProfileID: profil cabor milik admin yang login (scope ownership).
func callerCaborProfileID(db *gorm.DB, c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return uuid.Nil, err
	}

	var profile caborModel.CaborProfileModel
	if err := db.Select("cabor_profile_id").
		First(&profile, "cabor_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Profil cabor tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil cabor")
	}
	return profile.CaborProfileID, nil
}

// ListMyClubs: semua club di bawah cabor admin yang login, filter status +
// pencarian nama, paginated.
func (ctl *ClubVerificationController) ListMyClubs(c *fiber.Ctx) error {
	caborID, err := callerCaborProfileID(ctl.DB, c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 100)

	query := ctl.DB.Model(&model.ClubProfileModel{}).
		Where("club_profile_cabor_profile_id = ?", caborID)

	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		query = query.Where("club_profile_verification_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("club_profile_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data club")
	}

	var clubs []model.ClubProfileModel
	if err := query.
		Order("club_profile_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&clubs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data club")
	}

	items := make([]dto.ClubProfileResponse, 0, len(clubs))
	for i := range clubs {
		items = append(items, dto.ToClubProfileResponse(&clubs[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"clubs":      items,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, len(items), total),
	})
}

// GetClubDetail: detail satu club (harus di bawah cabor pemanggil).
func (ctl *ClubVerificationController) GetClubDetail(c *fiber.Ctx) error {
	club, err := findScopedClub(ctl.DB, c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.ToClubProfileResponse(club))
}

// ApproveClub: set status VERIFIED, alasan penolakan lama dihapus.
func (ctl *ClubVerificationController) ApproveClub(c *fiber.Ctx) error {
	club, err := findScopedClub(ctl.DB, c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"club_profile_verification_status": caborModel.VerificationVerified,
		"club_profile_rejection_reason":    nil,
	}
	if err := ctl.DB.Model(club).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status verifikasi")
	}

	return helper.JsonOK(c, "Club berhasil diverifikasi", nil)
}

// RejectClub: set status REJECTED dengan alasan (wajib diisi).
func (ctl *ClubVerificationController) RejectClub(c *fiber.Ctx) error {
	club, err := findScopedClub(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.RejectClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validasi gagal", map[string]string{
			"reason": "Alasan penolakan wajib diisi",
		})
	}

	updates := map[string]interface{}{
		"club_profile_verification_status": caborModel.VerificationRejected,
		"club_profile_rejection_reason":    req.Reason,
	}
	if err := ctl.DB.Model(club).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status verifikasi")
	}

	return helper.JsonOK(c, "Club ditolak dengan alasan tercatat", nil)
}

// findScopedClub memuat club dari path param dan memastikan club itu milik
// cabor pemanggil. Club cabor lain dibalas 404, bukan 403, supaya ID-nya
// tidak bisa dipakai menebak-nebak.
func findScopedClub(db *gorm.DB, c *fiber.Ctx) (*model.ClubProfileModel, error) {
	caborID, err := callerCaborProfileID(db, c)
	if err != nil {
		return nil, err
	}

	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID club tidak valid")
	}

	var club model.ClubProfileModel
	if err := db.First(&club,
		"club_profile_id = ? AND club_profile_cabor_profile_id = ?", clubID, caborID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Club tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data club")
	}
	return &club, nil
}
