// file: internals/features/athletes/controller/athlete_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/athletes/dto"
	"konisurabaya_backend/internals/features/athletes/model"
	clubModel "konisurabaya_backend/internals/features/clubs/model"
	helper "konisurabaya_backend/internals/helpers"
	helperAuth "konisurabaya_backend/internals/helpers/auth"
)

type AthleteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAthleteController(db *gorm.DB, v *validator.Validate) *AthleteController {
	return &AthleteController{DB: db, Validate: v}
}

// callerClubProfileID: profil club milik admin yang login. Semua operasi
// atlet di-scope ke club ini.
func callerClubProfileID(db *gorm.DB, c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return uuid.Nil, err
	}

	var club clubModel.ClubProfileModel
	if err := db.Select("club_profile_id").
		First(&club, "club_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Profil club tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil club")
	}
	return club.ClubProfileID, nil
}

// List: atlet milik club pemanggil, pencarian nama/NIK + filter gender,
// paginated.
func (ctl *AthleteController) List(c *fiber.Ctx) error {
	clubID, err := callerClubProfileID(ctl.DB, c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := ctl.DB.Model(&model.AthleteModel{}).
		Where("athlete_club_profile_id = ?", clubID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("athlete_name ILIKE ? OR athlete_nik LIKE ?", "%"+search+"%", search+"%")
	}
	if gender := strings.ToUpper(strings.TrimSpace(c.Query("gender"))); gender == string(model.GenderMale) || gender == string(model.GenderFemale) {
		query = query.Where("athlete_gender = ?", gender)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data atlet")
	}

	var athletes []model.AthleteModel
	if err := query.
		Order("athlete_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&athletes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data atlet")
	}

	items := make([]dto.AthleteResponse, 0, len(athletes))
	for i := range athletes {
		items = append(items, dto.ToAthleteResponse(&athletes[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"athletes":   items,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, len(items), total),
	})
}

// Create menambahkan satu atlet manual. NIK unik global.
func (ctl *AthleteController) Create(c *fiber.Ctx) error {
	clubID, err := callerClubProfileID(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.AthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	athlete := model.AthleteModel{
		AthleteClubProfileID: clubID,
		AthleteNIK:           req.NIK,
		AthleteName:          strings.ToUpper(strings.TrimSpace(req.Name)),
		AthleteBirthplace:    strings.ToUpper(strings.TrimSpace(req.Birthplace)),
		AthleteBirthdate:     birthdate,
		AthleteGender:        model.Gender(req.Gender),
		AthleteHeightCM:      req.HeightCM,
		AthleteWeightKG:      req.WeightKG,
		AthleteShirtSize:     req.ShirtSize,
		AthleteShoeSize:      req.ShoeSize,
		AthletePhone:         req.Phone,
	}

	if err := ctl.DB.Create(&athlete).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Atlet gagal disimpan", map[string]string{
				"nik": "NIK sudah terdaftar.",
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data atlet")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Atlet berhasil ditambahkan", dto.ToAthleteResponse(&athlete))
}

// Update mengedit satu atlet milik club pemanggil.
func (ctl *AthleteController) Update(c *fiber.Ctx) error {
	athlete, err := findScopedAthlete(ctl.DB, c)
	if err != nil {
		return err
	}

	var req dto.AthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	athlete.AthleteNIK = req.NIK
	athlete.AthleteName = strings.ToUpper(strings.TrimSpace(req.Name))
	athlete.AthleteBirthplace = strings.ToUpper(strings.TrimSpace(req.Birthplace))
	athlete.AthleteBirthdate = birthdate
	athlete.AthleteGender = model.Gender(req.Gender)
	athlete.AthleteHeightCM = req.HeightCM
	athlete.AthleteWeightKG = req.WeightKG
	athlete.AthleteShirtSize = req.ShirtSize
	athlete.AthleteShoeSize = req.ShoeSize
	athlete.AthletePhone = req.Phone

	if err := ctl.DB.Save(athlete).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Atlet gagal disimpan", map[string]string{
				"nik": "NIK sudah terdaftar.",
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data atlet")
	}

	return helper.JsonOK(c, "Data atlet diperbarui", dto.ToAthleteResponse(athlete))
}

// Delete menghapus satu atlet milik club pemanggil (hard delete).
func (ctl *AthleteController) Delete(c *fiber.Ctx) error {
	athlete, err := findScopedAthlete(ctl.DB, c)
	if err != nil {
		return err
	}

	if err := ctl.DB.Delete(athlete).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data atlet")
	}
	return helper.JsonOK(c, "Atlet berhasil dihapus", nil)
}

// ListAchievements: prestasi satu atlet milik club pemanggil (read-only).
func (ctl *AthleteController) ListAchievements(c *fiber.Ctx) error {
	athlete, err := findScopedAthlete(ctl.DB, c)
	if err != nil {
		return err
	}

	var achievements []model.AchievementModel
	if err := ctl.DB.
		Where("achievement_athlete_id = ?", athlete.AthleteID).
		Order("achievement_year DESC").
		Find(&achievements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data prestasi")
	}

	items := make([]dto.AchievementResponse, 0, len(achievements))
	for i := range achievements {
		items = append(items, dto.ToAchievementResponse(&achievements[i]))
	}
	return helper.JsonOK(c, "OK", items)
}

// SelfCheck (public): atlet mengecek keanggotaannya dengan NIK + tanggal
// lahir. NIK Surabaya diawali 3578; selain itu langsung ditolak tanpa query.
func (ctl *AthleteController) SelfCheck(c *fiber.Ctx) error {
	var req dto.AthleteSelfCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !strings.HasPrefix(req.NIK, "3578") {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan. Pastikan NIK dan tanggal lahir benar.")
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	var athlete model.AthleteModel
	if err := ctl.DB.
		Where("athlete_nik = ? AND athlete_birthdate = ?", req.NIK, birthdate.Format("2006-01-02")).
		First(&athlete).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan. Pastikan NIK dan tanggal lahir benar.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengecek data atlet")
	}

	return helper.JsonOK(c, "OK", dto.ToAthleteResponse(&athlete))
}

// findScopedAthlete memuat atlet dari path param, dibatasi ke club pemanggil.
func findScopedAthlete(db *gorm.DB, c *fiber.Ctx) (*model.AthleteModel, error) {
	clubID, err := callerClubProfileID(db, c)
	if err != nil {
		return nil, err
	}

	athleteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID atlet tidak valid")
	}

	var athlete model.AthleteModel
	if err := db.First(&athlete,
		"athlete_id = ? AND athlete_club_profile_id = ?", athleteID, clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Atlet tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data atlet")
	}
	return &athlete, nil
}
