// file: internals/features/athletes/model/achievement_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	caborModel "konisurabaya_backend/internals/features/federation/cabors/model"
)

// AchievementModel merepresentasikan tabel achievements (prestasi atlet).
// Di core ini hanya dibaca; jalur tulisnya ada di layanan pelaporan terpisah.
type AchievementModel struct {
	// PK
	AchievementID uuid.UUID `gorm:"column:achievement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"achievement_id"`

	// Relasi
	AchievementAthleteID uuid.UUID `gorm:"column:achievement_athlete_id;type:uuid;not null;index" json:"achievement_athlete_id"`

	AchievementChampionship string `gorm:"column:achievement_championship;type:varchar(150);not null" json:"achievement_championship"`
	AchievementLevel        string `gorm:"column:achievement_level;type:varchar(50);not null" json:"achievement_level"`
	AchievementRank         string `gorm:"column:achievement_rank;type:varchar(50);not null" json:"achievement_rank"`
	AchievementYear         int    `gorm:"column:achievement_year;not null" json:"achievement_year"`

	AchievementVerificationStatus caborModel.VerificationStatus `gorm:"column:achievement_verification_status;type:varchar(10);not null;default:'PENDING'" json:"achievement_verification_status"`

	AchievementCreatedAt time.Time `gorm:"column:achievement_created_at;autoCreateTime" json:"achievement_created_at"`
}

func (AchievementModel) TableName() string { return "achievements" }
