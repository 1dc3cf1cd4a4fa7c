// file: internals/features/athletes/dto/athlete_dto.go
package dto

import (
	"time"

	"konisurabaya_backend/internals/features/athletes/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type AthleteRequest struct {
	NIK        string `json:"nik" validate:"required,len=16,numeric"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Birthplace string `json:"birthplace" validate:"required,min=2,max=100"`
	Birthdate  string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender     string `json:"gender" validate:"required,oneof=MALE FEMALE"`

	HeightCM  *int    `json:"height_cm" validate:"omitempty,gt=0"`
	WeightKG  *int    `json:"weight_kg" validate:"omitempty,gt=0"`
	ShirtSize *string `json:"shirt_size"`
	ShoeSize  *int    `json:"shoe_size" validate:"omitempty,gt=0"`
	Phone     *string `json:"phone"`
}

// AthleteSelfCheckRequest: "login" atlet dengan NIK + tanggal lahir.
type AthleteSelfCheckRequest struct {
	NIK       string `json:"nik" validate:"required,len=16,numeric"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AthleteResponse struct {
	AthleteID  string `json:"athlete_id"`
	NIK        string `json:"nik"`
	Name       string `json:"name"`
	Birthplace string `json:"birthplace"`
	Birthdate  string `json:"birthdate"`
	Gender     string `json:"gender"`

	HeightCM  *int    `json:"height_cm,omitempty"`
	WeightKG  *int    `json:"weight_kg,omitempty"`
	ShirtSize *string `json:"shirt_size,omitempty"`
	ShoeSize  *int    `json:"shoe_size,omitempty"`
	Phone     *string `json:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func ToAthleteResponse(m *model.AthleteModel) AthleteResponse {
	return AthleteResponse{
		AthleteID:  m.AthleteID.String(),
		NIK:        m.AthleteNIK,
		Name:       m.AthleteName,
		Birthplace: m.AthleteBirthplace,
		Birthdate:  m.AthleteBirthdate.Format("2006-01-02"),
		Gender:     string(m.AthleteGender),

		HeightCM:  m.AthleteHeightCM,
		WeightKG:  m.AthleteWeightKG,
		ShirtSize: m.AthleteShirtSize,
		ShoeSize:  m.AthleteShoeSize,
		Phone:     m.AthletePhone,

		CreatedAt: m.AthleteCreatedAt,
	}
}

// ImportResultResponse: ringkasan hasil import spreadsheet.
// Ghost row tidak kelihatan di count maupun failed.
type ImportResultResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

type AchievementResponse struct {
	AchievementID      string `json:"achievement_id"`
	Championship       string `json:"championship"`
	Level              string `json:"level"`
	Rank               string `json:"rank"`
	Year               int    `json:"year"`
	VerificationStatus string `json:"verification_status"`
}

func ToAchievementResponse(m *model.AchievementModel) AchievementResponse {
	return AchievementResponse{
		AchievementID:      m.AchievementID.String(),
		Championship:       m.AchievementChampionship,
		Level:              m.AchievementLevel,
		Rank:               m.AchievementRank,
		Year:               m.AchievementYear,
		VerificationStatus: string(m.AchievementVerificationStatus),
	}
}
