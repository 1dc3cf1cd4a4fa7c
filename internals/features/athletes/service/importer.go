// file: internals/features/athletes/service/importer.go
package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"konisurabaya_backend/internals/features/athletes/model"
)

// Header wajib template import atlet (dibanding sebagai set, bukan urutan).
var RequiredHeaders = []string{
	"NIK",
	"NAMA LENGKAP",
	"TEMPAT LAHIR",
	"TANGGAL LAHIR",
	"JENIS KELAMIN",
	"TINGGI BADAN (CM)",
	"BERAT BADAN (KG)",
	"UKURAN BAJU",
	"UKURAN SEPATU",
	"NO WA",
}

/* =========================================================
   KLASIFIKASI BARIS — tagged variant, bukan counter++/continue,
   supaya keputusan per-baris bisa dites terpisah dari loop.
========================================================= */

type RowOutcome int

const (
	// RowValid: baris lolos semua validasi, siap di-insert.
	RowValid RowOutcome = iota
	// RowGhost: NIK dan nama dua-duanya kosong — artefak baris kosong
	// dari spreadsheet hasil edit manual. Di-skip diam-diam, tidak
	// dihitung sukses maupun gagal.
	RowGhost
	// RowInvalid: ada data tapi tidak valid. Dihitung gagal.
	RowInvalid
)

type AthleteRow struct {
	NIK        string
	Name       string
	Birthplace string
	Birthdate  time.Time
	Gender     model.Gender

	HeightCM  *int
	WeightKG  *int
	ShirtSize *string
	ShoeSize  *int
	Phone     *string
}

type ParsedRow struct {
	Outcome RowOutcome
	Reason  string
	Record  *AthleteRow
}

// MissingHeaders membandingkan baris header dengan RequiredHeaders sebagai set.
func MissingHeaders(headerRow []string) []string {
	present := make(map[string]struct{}, len(headerRow))
	for _, h := range headerRow {
		present[strings.TrimSpace(h)] = struct{}{}
	}

	var missing []string
	for _, h := range RequiredHeaders {
		if _, ok := present[h]; !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

// ClassifyRow memutuskan nasib satu baris data. cells dipetakan per nama
// header, nilai mentah (belum di-trim).
func ClassifyRow(cells map[string]string) ParsedRow {
	nik := strings.TrimSpace(cells["NIK"])
	name := strings.TrimSpace(cells["NAMA LENGKAP"])

	// Ghost row: dua-duanya kosong → skip diam-diam.
	if nik == "" && name == "" {
		return ParsedRow{Outcome: RowGhost}
	}

	// Ada isi tapi NIK/nama bolong → error beneran.
	if nik == "" || name == "" {
		return ParsedRow{Outcome: RowInvalid, Reason: "NIK/nama kosong"}
	}

	// Jenis kelamin strict: L / P (case-insensitive).
	var gender model.Gender
	switch strings.ToUpper(strings.TrimSpace(cells["JENIS KELAMIN"])) {
	case "L":
		gender = model.GenderMale
	case "P":
		gender = model.GenderFemale
	default:
		return ParsedRow{Outcome: RowInvalid, Reason: "jenis kelamin bukan L/P"}
	}

	birthdate, err := ParseBirthdate(strings.TrimSpace(cells["TANGGAL LAHIR"]))
	if err != nil {
		return ParsedRow{Outcome: RowInvalid, Reason: "tanggal lahir tidak valid"}
	}

	height, ok := parseOptionalInt(cells["TINGGI BADAN (CM)"])
	if !ok {
		return ParsedRow{Outcome: RowInvalid, Reason: "tinggi badan bukan angka"}
	}
	weight, ok := parseOptionalInt(cells["BERAT BADAN (KG)"])
	if !ok {
		return ParsedRow{Outcome: RowInvalid, Reason: "berat badan bukan angka"}
	}
	shoe, ok := parseOptionalInt(cells["UKURAN SEPATU"])
	if !ok {
		return ParsedRow{Outcome: RowInvalid, Reason: "ukuran sepatu bukan angka"}
	}

	rec := &AthleteRow{
		NIK:        nik,
		Name:       strings.ToUpper(name),
		Birthplace: strings.ToUpper(strings.TrimSpace(cells["TEMPAT LAHIR"])),
		Birthdate:  birthdate,
		Gender:     gender,
		HeightCM:   height,
		WeightKG:   weight,
		ShoeSize:   shoe,
	}
	if v := strings.ToUpper(strings.TrimSpace(cells["UKURAN BAJU"])); v != "" {
		rec.ShirtSize = &v
	}
	if v := strings.TrimSpace(cells["NO WA"]); v != "" {
		rec.Phone = &v
	}

	return ParsedRow{Outcome: RowValid, Record: rec}
}

// ParseBirthdate menerima tiga bentuk, yang cocok duluan menang:
//  1. serial date Excel (angka)
//  2. string "DD/MM/YYYY"
//  3. string tanggal umum (ISO dsb.)
func ParseBirthdate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("tanggal kosong")
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	}

	if t, err := time.Parse("02/01/2006", raw); err == nil {
		return t, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("format tanggal tidak dikenali: %q", raw)
}

// parseOptionalInt: "" → nil (boleh), angka → nilai, selain itu → tidak valid.
func parseOptionalInt(raw string) (*int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &v, true
}

/* =========================================================
   PIPELINE — parse workbook → validasi header → klasifikasi
   per baris → satu batch insert (duplikat NIK di-skip).
========================================================= */

type ImportResult struct {
	Inserted int
	Failed   int
}

type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

// ImportAthletes memproses satu file xlsx (worksheet pertama) untuk club
// tertentu. Validasi seluruh baris selesai dulu di memori, baru insert
// sekali jalan.
func (s *ImportService) ImportAthletes(clubProfileID uuid.UUID, r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, errors.New("file tidak bisa dibaca sebagai spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, errors.New("file kosong/format salah")
	}

	// RawCellValue: sel tanggal balik sebagai serial number, bukan hasil
	// format tampilan yang bisa beda-beda antar file.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return ImportResult{}, errors.New("gagal membaca isi worksheet")
	}
	if len(rows) == 0 {
		return ImportResult{}, errors.New("file kosong/format salah")
	}

	header := rows[0]
	if missing := MissingHeaders(header); len(missing) > 0 {
		return ImportResult{}, fmt.Errorf("format header salah. Kolom hilang: %s", strings.Join(missing, ", "))
	}

	headerIndex := make(map[int]string, len(header))
	for i, h := range header {
		headerIndex[i] = strings.TrimSpace(h)
	}

	var records []model.AthleteModel
	failed := 0

	for _, row := range rows[1:] {
		cells := make(map[string]string, len(headerIndex))
		for i, name := range headerIndex {
			if i < len(row) {
				cells[name] = row[i]
			}
		}

		parsed := ClassifyRow(cells)
		switch parsed.Outcome {
		case RowGhost:
			continue
		case RowInvalid:
			failed++
		case RowValid:
			rec := parsed.Record
			records = append(records, model.AthleteModel{
				AthleteClubProfileID: clubProfileID,
				AthleteNIK:           rec.NIK,
				AthleteName:          rec.Name,
				AthleteBirthplace:    rec.Birthplace,
				AthleteBirthdate:     rec.Birthdate,
				AthleteGender:        rec.Gender,
				AthleteHeightCM:      rec.HeightCM,
				AthleteWeightKG:      rec.WeightKG,
				AthleteShirtSize:     rec.ShirtSize,
				AthleteShoeSize:      rec.ShoeSize,
				AthletePhone:         rec.Phone,
			})
		}
	}

	inserted := 0
	if len(records) > 0 {
		// ON CONFLICT DO NOTHING: NIK duplikat (terhadap DB maupun sesama
		// batch) di-skip diam-diam, sisanya tetap masuk. Import file yang
		// sama dua kali aman.
		tx := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&records)
		if tx.Error != nil {
			return ImportResult{}, tx.Error
		}
		inserted = int(tx.RowsAffected)
	}

	return ImportResult{Inserted: inserted, Failed: failed}, nil
}
