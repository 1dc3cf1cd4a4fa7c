// file: internals/features/athletes/model/athlete_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender adalah enumerasi tertutup jenis kelamin atlet.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// AthleteModel merepresentasikan tabel athletes. Milik tepat satu club.
type AthleteModel struct {
	// PK
	AthleteID uuid.UUID `gorm:"column:athlete_id;type:uuid;default:gen_random_uuid();primaryKey" json:"athlete_id"`

	// Relasi
	AthleteClubProfileID uuid.UUID `gorm:"column:athlete_club_profile_id;type:uuid;not null;index" json:"athlete_club_profile_id"`

	// Identitas (NIK 16 digit, unik global)
	AthleteNIK        string    `gorm:"column:athlete_nik;type:char(16);uniqueIndex;not null" json:"athlete_nik"`
	AthleteName       string    `gorm:"column:athlete_name;type:varchar(100);not null" json:"athlete_name"`
	AthleteBirthplace string    `gorm:"column:athlete_birthplace;type:varchar(100);not null" json:"athlete_birthplace"`
	AthleteBirthdate  time.Time `gorm:"column:athlete_birthdate;type:date;not null" json:"athlete_birthdate"`
	AthleteGender     Gender    `gorm:"column:athlete_gender;type:varchar(6);not null" json:"athlete_gender"`

	// Data fisik (semua opsional)
	AthleteHeightCM  *int    `gorm:"column:athlete_height_cm" json:"athlete_height_cm,omitempty"`
	AthleteWeightKG  *int    `gorm:"column:athlete_weight_kg" json:"athlete_weight_kg,omitempty"`
	AthleteShirtSize *string `gorm:"column:athlete_shirt_size;type:varchar(10)" json:"athlete_shirt_size,omitempty"`
	AthleteShoeSize  *int    `gorm:"column:athlete_shoe_size" json:"athlete_shoe_size,omitempty"`

	AthletePhone *string `gorm:"column:athlete_phone;type:varchar(30)" json:"athlete_phone,omitempty"`

	// Audit
	AthleteCreatedAt time.Time `gorm:"column:athlete_created_at;autoCreateTime" json:"athlete_created_at"`
	AthleteUpdatedAt time.Time `gorm:"column:athlete_updated_at;autoUpdateTime" json:"athlete_updated_at"`
}

func (AthleteModel) TableName() string { return "athletes" }
