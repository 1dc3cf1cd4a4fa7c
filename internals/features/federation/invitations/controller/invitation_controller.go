// file: internals/features/federation/invitations/controller/invitation_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/federation/invitations/dto"
	"konisurabaya_backend/internals/features/federation/invitations/model"
	helper "konisurabaya_backend/internals/helpers"
	helperAuth "konisurabaya_backend/internals/helpers/auth"
)

// Masa berlaku undangan KONI: 24 jam sejak diterbitkan.
const invitationTTL = 24 * time.Hour

// Budget retry kalau token 4 karakter kebentur unique constraint.
const tokenRetryBudget = 3

type InvitationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInvitationController(db *gorm.DB, v *validator.Validate) *InvitationController {
	return &InvitationController{DB: db, Validate: v}
}

// Create menerbitkan token undangan baru untuk onboarding admin cabor.
// Hanya ADMIN_KONI (dijaga juga oleh route group).
func (ctl *InvitationController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var inv model.KoniInvitationModel
	for attempt := 1; attempt <= tokenRetryBudget; attempt++ {
		inv = model.KoniInvitationModel{
			InvitationToken:     helper.GenerateToken("KONI"),
			InvitationExpiresAt: helper.ExpiryFromNow(invitationTTL),
			InvitationIsActive:  true,
			InvitationCreatedBy: userID,
		}
		if req.Description != "" {
			desc := req.Description
			inv.InvitationDescription = &desc
		}

		err = ctl.DB.Create(&inv).Error
		if err == nil {
			break
		}
		if helper.IsUniqueViolation(err) {
			log.Printf("[WARNING] Token undangan bentrok (%s), retry %d/%d", inv.InvitationToken, attempt, tokenRetryBudget)
			continue
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat undangan. Silakan coba lagi.")
	}
	if err != nil {
		// budget retry habis, semua percobaan bentrok
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token unik. Silakan coba lagi.")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Undangan berhasil dibuat", dto.ToInvitationResponse(&inv))
}

// List menampilkan semua undangan (terbaru dulu), paginated.
func (ctl *InvitationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctl.DB.Model(&model.KoniInvitationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data undangan")
	}

	var invitations []model.KoniInvitationModel
	if err := ctl.DB.
		Order("invitation_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&invitations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data undangan")
	}

	items := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		items = append(items, dto.ToInvitationResponse(&invitations[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"invitations": items,
		"pagination":  helper.BuildPagination(paging.Page, paging.PerPage, len(items), total),
	})
}

// Validate mengecek token undangan (public, dipakai halaman registrasi).
// Pesan dibedakan per kasus: tidak ditemukan / sudah digunakan / kadaluarsa.
func (ctl *InvitationController) ValidateToken(c *fiber.Ctx) error {
	var req dto.ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp := ValidateInvitationToken(ctl.DB, req.Token, time.Now())
	return helper.JsonOK(c, "OK", resp)
}

// ValidateInvitationToken adalah predikat validitas yang dipakai ulang oleh
// alur registrasi cabor (re-validasi di dalam transaksi pendaftaran).
func ValidateInvitationToken(db *gorm.DB, token string, now time.Time) dto.TokenValidationResponse {
	var inv model.KoniInvitationModel
	if err := db.Where("invitation_token = ?", token).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenValidationResponse{Valid: false, Error: "Token tidak ditemukan."}
		}
		return dto.TokenValidationResponse{Valid: false, Error: "Gagal memvalidasi token."}
	}

	if err := inv.UsableAt(now); err != nil {
		switch {
		case errors.Is(err, model.ErrTokenConsumed):
			return dto.TokenValidationResponse{Valid: false, Error: "Token sudah digunakan."}
		default:
			return dto.TokenValidationResponse{Valid: false, Error: "Token sudah kadaluarsa."}
		}
	}

	return dto.TokenValidationResponse{
		Valid: true,
		Data: &dto.TokenValidationData{
			InvitationID: inv.InvitationID.String(),
			Description:  inv.InvitationDescription,
			ExpiresAt:    inv.InvitationExpiresAt,
		},
	}
}
