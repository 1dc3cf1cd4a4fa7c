package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"konisurabaya_backend/internals/features/athletes/model"
)

/* =========================================================
   MissingHeaders
========================================================= */

func TestMissingHeaders_Complete(t *testing.T) {
	assert.Empty(t, MissingHeaders(RequiredHeaders))
}

func TestMissingHeaders_IgnoresOrderAndExtras(t *testing.T) {
	shuffled := []string{
		"NO WA", "NIK", "KOLOM TAMBAHAN", "NAMA LENGKAP", "TANGGAL LAHIR",
		"TEMPAT LAHIR", "JENIS KELAMIN", "TINGGI BADAN (CM)",
		"BERAT BADAN (KG)", "UKURAN BAJU", "UKURAN SEPATU",
	}
	assert.Empty(t, MissingHeaders(shuffled))
}

func TestMissingHeaders_ReportsMissing(t *testing.T) {
	missing := MissingHeaders([]string{"NIK", "NAMA LENGKAP"})

	assert.Contains(t, missing, "TANGGAL LAHIR")
	assert.Contains(t, missing, "NO WA")
	assert.Len(t, missing, 8)
}

/* =========================================================
   ClassifyRow
========================================================= */

func validCells() map[string]string {
	return map[string]string{
		"NIK":               "3578011203040005",
		"NAMA LENGKAP":      "Budi Santoso",
		"TEMPAT LAHIR":      "Surabaya",
		"TANGGAL LAHIR":     "12/03/2004",
		"JENIS KELAMIN":     "L",
		"TINGGI BADAN (CM)": "172",
		"BERAT BADAN (KG)":  "65",
		"UKURAN BAJU":       "m",
		"UKURAN SEPATU":     "42",
		"NO WA":             "081234567890",
	}
}

func TestClassifyRow_Valid(t *testing.T) {
	parsed := ClassifyRow(validCells())

	require.Equal(t, RowValid, parsed.Outcome)
	rec := parsed.Record
	require.NotNil(t, rec)

	assert.Equal(t, "3578011203040005", rec.NIK)
	assert.Equal(t, "BUDI SANTOSO", rec.Name)
	assert.Equal(t, "SURABAYA", rec.Birthplace)
	assert.Equal(t, model.GenderMale, rec.Gender)
	assert.Equal(t, time.Date(2004, time.March, 12, 0, 0, 0, 0, time.UTC), rec.Birthdate)

	require.NotNil(t, rec.HeightCM)
	assert.Equal(t, 172, *rec.HeightCM)
	require.NotNil(t, rec.ShirtSize)
	assert.Equal(t, "M", *rec.ShirtSize)
	require.NotNil(t, rec.Phone)
	assert.Equal(t, "081234567890", *rec.Phone)
}

// Baris dengan NIK dan nama dua-duanya kosong adalah artefak spreadsheet,
// di-skip tanpa dihitung gagal.
func TestClassifyRow_GhostRow(t *testing.T) {
	cells := validCells()
	cells["NIK"] = ""
	cells["NAMA LENGKAP"] = "   "

	parsed := ClassifyRow(cells)
	assert.Equal(t, RowGhost, parsed.Outcome)
}

// Salah satu dari NIK/nama kosong (tapi tidak dua-duanya) = error beneran.
func TestClassifyRow_PartialIdentityInvalid(t *testing.T) {
	cells := validCells()
	cells["NIK"] = ""

	parsed := ClassifyRow(cells)
	assert.Equal(t, RowInvalid, parsed.Outcome)

	cells = validCells()
	cells["NAMA LENGKAP"] = ""
	parsed = ClassifyRow(cells)
	assert.Equal(t, RowInvalid, parsed.Outcome)
}

func TestClassifyRow_GenderMapping(t *testing.T) {
	cells := validCells()

	cells["JENIS KELAMIN"] = "p"
	parsed := ClassifyRow(cells)
	require.Equal(t, RowValid, parsed.Outcome)
	assert.Equal(t, model.GenderFemale, parsed.Record.Gender)

	cells["JENIS KELAMIN"] = " l "
	parsed = ClassifyRow(cells)
	require.Equal(t, RowValid, parsed.Outcome)
	assert.Equal(t, model.GenderMale, parsed.Record.Gender)
}

func TestClassifyRow_UnknownGenderInvalid(t *testing.T) {
	cells := validCells()
	cells["JENIS KELAMIN"] = "X"

	parsed := ClassifyRow(cells)
	assert.Equal(t, RowInvalid, parsed.Outcome)
	assert.Contains(t, parsed.Reason, "jenis kelamin")
}

func TestClassifyRow_BadDateInvalid(t *testing.T) {
	cells := validCells()
	cells["TANGGAL LAHIR"] = "bukan tanggal"

	parsed := ClassifyRow(cells)
	assert.Equal(t, RowInvalid, parsed.Outcome)
}

func TestClassifyRow_NonNumericOptionalInvalid(t *testing.T) {
	cells := validCells()
	cells["TINGGI BADAN (CM)"] = "seratus"

	parsed := ClassifyRow(cells)
	assert.Equal(t, RowInvalid, parsed.Outcome)
}

func TestClassifyRow_EmptyOptionalsAllowed(t *testing.T) {
	cells := validCells()
	cells["TINGGI BADAN (CM)"] = ""
	cells["BERAT BADAN (KG)"] = ""
	cells["UKURAN BAJU"] = ""
	cells["UKURAN SEPATU"] = ""
	cells["NO WA"] = ""

	parsed := ClassifyRow(cells)
	require.Equal(t, RowValid, parsed.Outcome)
	assert.Nil(t, parsed.Record.HeightCM)
	assert.Nil(t, parsed.Record.WeightKG)
	assert.Nil(t, parsed.Record.ShirtSize)
	assert.Nil(t, parsed.Record.ShoeSize)
	assert.Nil(t, parsed.Record.Phone)
}

/* =========================================================
   ParseBirthdate
========================================================= */

func TestParseBirthdate_ExcelSerial(t *testing.T) {
	// 38058 = 2004-03-12 dalam serial date Excel (epoch 1900).
	got, err := ParseBirthdate("38058")
	require.NoError(t, err)
	assert.Equal(t, 2004, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 12, got.Day())
}

func TestParseBirthdate_SlashFormat(t *testing.T) {
	got, err := ParseBirthdate("31/12/1999")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthdate_ISO(t *testing.T) {
	got, err := ParseBirthdate("1999-12-31")
	require.NoError(t, err)
	assert.Equal(t, 1999, got.Year())
}

func TestParseBirthdate_Invalid(t *testing.T) {
	_, err := ParseBirthdate("")
	assert.Error(t, err)

	_, err = ParseBirthdate("31-12-1999")
	assert.Error(t, err)
}

/* =========================================================
   Pipeline (tanpa DB: kasus yang berhenti sebelum insert)
========================================================= */

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

// Header hilang menggagalkan SELURUH import, tidak ada baris yang diproses.
func TestImportAthletes_BadHeaderAbortsAll(t *testing.T) {
	s := &ImportService{}
	r := buildWorkbook(t, [][]string{
		{"NIK", "NAMA"},
		{"3578011203040005", "BUDI"},
	})

	_, err := s.ImportAthletes(uuid.New(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kolom hilang")
}

func TestImportAthletes_NotASpreadsheet(t *testing.T) {
	s := &ImportService{}

	_, err := s.ImportAthletes(uuid.New(), bytes.NewReader([]byte("bukan xlsx")))
	assert.Error(t, err)
}

// File berisi hanya ghost row + baris invalid: tidak ada insert yang terjadi,
// hasilnya 0 masuk dengan jumlah gagal yang benar.
func TestImportAthletes_GhostAndInvalidOnly(t *testing.T) {
	s := &ImportService{}
	r := buildWorkbook(t, [][]string{
		RequiredHeaders,
		{"", "", "", "", "", "", "", "", "", ""},                                     // ghost
		{"3578011203040005", "", "SURABAYA", "12/03/2004", "L", "", "", "", "", ""},  // nama kosong
		{"3578011203040006", "ANI", "SURABAYA", "12/03/2004", "Z", "", "", "", "", ""}, // gender salah
	})

	result, err := s.ImportAthletes(uuid.New(), r)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 2, result.Failed)
}
