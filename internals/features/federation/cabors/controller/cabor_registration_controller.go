// file: internals/features/federation/cabors/controller/cabor_registration_controller.go
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
	"konisurabaya_backend/internals/features/federation/cabors/dto"
	"konisurabaya_backend/internals/features/federation/cabors/model"
	invController "konisurabaya_backend/internals/features/federation/invitations/controller"
	invModel "konisurabaya_backend/internals/features/federation/invitations/model"
	userModel "konisurabaya_backend/internals/features/users/user/model"
	helper "konisurabaya_backend/internals/helpers"
)

type CaborRegistrationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCaborRegistrationController(db *gorm.DB, v *validator.Validate) *CaborRegistrationController {
	return &CaborRegistrationController{DB: db, Validate: v}
}

// ListMasterCabors: daftar cabang olahraga untuk dropdown form registrasi
// (public).
func (ctl *CaborRegistrationController) ListMasterCabors(c *fiber.Ctx) error {
	var cabors []model.MasterCaborModel
	if err := ctl.DB.Order("master_cabor_name ASC").Find(&cabors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar cabor")
	}
	return helper.JsonOK(c, "OK", cabors)
}

// Register mendaftarkan admin cabor baru lewat token undangan KONI.
// Urutan: re-validasi token → validasi field → cek email/username →
// transaksi (user + profil + konsumsi token) all-or-nothing.
func (ctl *CaborRegistrationController) Register(c *fiber.Ctx) error {
	var req dto.RegisterCaborAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	if strings.TrimSpace(req.Token) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token wajib diisi")
	}

	// Token dicek duluan — pre-validasi di halaman sebelumnya bisa saja
	// sudah basi (token keburu dipakai/kadaluarsa).
	tokenCheck := invController.ValidateInvitationToken(ctl.DB, req.Token, time.Now())
	if !tokenCheck.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, tokenCheck.Error)
	}

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.MasterCaborID == "NEW" && strings.TrimSpace(req.NewCaborName) == "" {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validasi gagal", map[string]string{
			"new_cabor_name": "Nama Cabor baru tidak valid",
		})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = strings.SplitN(req.Email, "@", 2)[0]
	}

	// Cek duplikat akun sebelum masuk transaksi.
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

	var profile model.CaborProfileModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		masterCaborID, err := resolveMasterCabor(tx, req.MasterCaborID, req.NewCaborName)
		if err != nil {
			return err
		}

		user := userModel.UserModel{
			UserUsername:     username,
			UserEmail:        req.Email,
			UserPasswordHash: string(hash),
			UserRole:         constants.RoleAdminCabor,
			UserIsActive:     true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile = model.CaborProfileModel{
			CaborProfileUserID:             user.UserID,
			CaborProfileMasterCaborID:      masterCaborID,
			CaborProfileVerificationStatus: model.VerificationPending,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		// Konsumsi token di transaksi yang sama. Guard is_active = true
		// menahan dua registrasi paralel dengan token yang sama.
		res := tx.Model(&invModel.KoniInvitationModel{}).
			Where("invitation_token = ? AND invitation_is_active = true", req.Token).
			Update("invitation_is_active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return invModel.ErrTokenConsumed
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, invModel.ErrTokenConsumed) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token sudah digunakan.")
		}
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] Registrasi cabor gagal: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mendaftar. Silakan coba lagi.")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil. Profil Anda menunggu verifikasi Admin KONI.", fiber.Map{
		"cabor_profile_id": profile.CaborProfileID.String(),
	})
}

// resolveMasterCabor memilih master cabor yang ada atau membuat baru.
// Nama dinormalisasi (UPPERCASE) dan di-dedupe case-insensitive, jadi user
// yang pilih "NEW" tapi mengetik nama yang sudah ada tetap nempel ke record
// lama.
func resolveMasterCabor(tx *gorm.DB, masterCaborID, newName string) (uuid.UUID, error) {
	if masterCaborID != "NEW" {
		id, err := uuid.Parse(masterCaborID)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID cabor tidak valid")
		}
		var mc model.MasterCaborModel
		if err := tx.First(&mc, "master_cabor_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Cabang olahraga tidak ditemukan")
			}
			return uuid.Nil, err
		}
		return mc.MasterCaborID, nil
	}

	normalized := dto.NormalizeCaborName(newName)

	var mc model.MasterCaborModel
	err := tx.Where("UPPER(master_cabor_name) = ?", normalized).First(&mc).Error
	if err == nil {
		return mc.MasterCaborID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	mc = model.MasterCaborModel{
		MasterCaborName:       normalized,
		MasterCaborIsVerified: false,
	}
	if err := tx.Create(&mc).Error; err != nil {
		return uuid.Nil, err
	}
	return mc.MasterCaborID, nil
}
