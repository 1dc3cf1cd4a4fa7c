// file: internals/features/federation/cabors/controller/koni_verification_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/federation/cabors/dto"
	"konisurabaya_backend/internals/features/federation/cabors/model"
	helper "konisurabaya_backend/internals/helpers"
)

// KoniVerificationController: review profil cabor oleh Admin KONI.
type KoniVerificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewKoniVerificationController(db *gorm.DB, v *validator.Validate) *KoniVerificationController {
	return &KoniVerificationController{DB: db, Validate: v}
}

// ListCabors: semua profil cabor, filter status + pencarian nama cabor,
// paginated.
func (ctl *KoniVerificationController) ListCabors(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	query := ctl.DB.Model(&model.CaborProfileModel{}).
		Joins("JOIN master_cabors ON master_cabors.master_cabor_id = cabor_profiles.cabor_profile_master_cabor_id")

	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		query = query.Where("cabor_profile_verification_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("master_cabors.master_cabor_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cabor")
	}

	var profiles []model.CaborProfileModel
	if err := query.Preload("MasterCabor").
		Order("cabor_profile_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cabor")
	}

	items := make([]dto.CaborProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, dto.ToCaborProfileResponse(&profiles[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"cabors":     items,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, len(items), total),
	})
}

// GetCaborDetail: detail satu profil cabor untuk halaman review.
func (ctl *KoniVerificationController) GetCaborDetail(c *fiber.Ctx) error {
	profile, err := findCaborByParam(ctl.DB, c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.ToCaborProfileResponse(profile))
}

// ApproveCabor: set status VERIFIED, alasan penolakan lama dihapus.
func (ctl *KoniVerificationController) ApproveCabor(c *fiber.Ctx) error {
	profile, err := findCaborByParam(ctl.DB, c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"cabor_profile_verification_status": model.VerificationVerified,
		"cabor_profile_rejection_reason":    nil,
	}
	if err := ctl.DB.Model(profile).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status verifikasi")
	}

	return helper.JsonOK(c, "Cabor berhasil diverifikasi", nil)
}

// RejectCabor: set status REJECTED dengan alasan (wajib diisi).
func (ctl *KoniVerificationController) RejectCabor(c *fiber.Ctx) error {
	profile, err := findCaborByParam(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.RejectCaborRequest
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
		"cabor_profile_verification_status": model.VerificationRejected,
		"cabor_profile_rejection_reason":    req.Reason,
	}
	if err := ctl.DB.Model(profile).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status verifikasi")
	}

	return helper.JsonOK(c, "Cabor ditolak dengan alasan tercatat", nil)
}

func findCaborByParam(db *gorm.DB, c *fiber.Ctx) (*model.CaborProfileModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID cabor tidak valid")
	}

	var profile model.CaborProfileModel
	if err := db.Preload("MasterCabor").
		First(&profile, "cabor_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profil cabor tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil cabor")
	}
	return &profile, nil
}
