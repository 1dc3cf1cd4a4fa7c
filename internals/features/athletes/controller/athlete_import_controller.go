// file: internals/features/athletes/controller/athlete_import_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/features/athletes/dto"
	"konisurabaya_backend/internals/features/athletes/service"
	helper "konisurabaya_backend/internals/helpers"
)

// Batas ukuran file import (field "file", multipart).
const maxImportFileSize = 5 * 1024 * 1024

type AthleteImportController struct {
	DB       *gorm.DB
	Importer *service.ImportService
}

func NewAthleteImportController(db *gorm.DB) *AthleteImportController {
	return &AthleteImportController{DB: db, Importer: service.NewImportService(db)}
}

// Import memproses satu file .xlsx berisi daftar atlet untuk club pemanggil.
// Header salah menggagalkan seluruh import; baris kosong (ghost) di-skip
// diam-diam; baris tidak valid dihitung gagal tanpa membatalkan sisanya.
func (ctl *AthleteImportController) Import(c *fiber.Ctx) error {
	clubID, err := callerClubProfileID(ctl.DB, c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di request")
	}
	if fileHeader.Size > maxImportFileSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format file harus .xlsx")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer f.Close()

	result, err := ctl.Importer.ImportAthletes(clubID, f)
	if err != nil {
		log.Printf("[WARNING] Import atlet club %s gagal: %v", clubID, err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	msg := fmt.Sprintf("Import selesai: %d atlet masuk", result.Inserted)
	if result.Failed > 0 {
		msg = fmt.Sprintf("Import selesai: %d atlet masuk, %d baris gagal", result.Inserted, result.Failed)
	}

	return helper.JsonOK(c, msg, dto.ImportResultResponse{
		Success: true,
		Count:   result.Inserted,
		Failed:  result.Failed,
		Message: msg,
	})
}
