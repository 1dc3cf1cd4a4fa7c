// file: internals/features/clubs/model/club_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	caborModel "konisurabaya_backend/internals/features/federation/cabors/model"
)

// ClubProfileModel merepresentasikan tabel club_profiles.
// Dimiliki 1:1 oleh user ber-role ADMIN_CLUB, menginduk ke satu CaborProfile.
//
// Catatan status: saat registrasi club otomatis VERIFIED (di-vouch oleh Cabor
// penerbit token) tapi is_onboarded=false; submit form onboarding me-reset
// status ke PENDING untuk direview Admin Cabor.
type ClubProfileModel struct {
	// PK
	ClubProfileID uuid.UUID `gorm:"column:club_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"club_profile_id"`

	// Relasi
	ClubProfileUserID         uuid.UUID                     `gorm:"column:club_profile_user_id;type:uuid;uniqueIndex;not null" json:"club_profile_user_id"`
	ClubProfileCaborProfileID uuid.UUID                     `gorm:"column:club_profile_cabor_profile_id;type:uuid;not null;index" json:"club_profile_cabor_profile_id"`
	CaborProfile              *caborModel.CaborProfileModel `gorm:"foreignKey:ClubProfileCaborProfileID;references:CaborProfileID" json:"cabor_profile,omitempty"`

	// Identitas (nama club immutable setelah dibuat)
	ClubProfileName string `gorm:"column:club_profile_name;type:varchar(100);not null" json:"club_profile_name"`

	// Data organisasi (diisi saat onboarding)
	ClubProfileChairName        *string `gorm:"column:club_profile_chair_name;type:varchar(100)" json:"club_profile_chair_name,omitempty"`
	ClubProfileSecretaryName    *string `gorm:"column:club_profile_secretary_name;type:varchar(100)" json:"club_profile_secretary_name,omitempty"`
	ClubProfileBasecampAddr     *string `gorm:"column:club_profile_basecamp_addr;type:text" json:"club_profile_basecamp_addr,omitempty"`
	ClubProfileTrainingSchedule *string `gorm:"column:club_profile_training_schedule;type:text" json:"club_profile_training_schedule,omitempty"`
	ClubProfileTrainingLocation *string `gorm:"column:club_profile_training_location;type:text" json:"club_profile_training_location,omitempty"`

	// Status
	ClubProfileIsOnboarded        bool                          `gorm:"column:club_profile_is_onboarded;not null;default:false" json:"club_profile_is_onboarded"`
	ClubProfileVerificationStatus caborModel.VerificationStatus `gorm:"column:club_profile_verification_status;type:varchar(10);not null;default:'PENDING'" json:"club_profile_verification_status"`
	ClubProfileRejectionReason    *string                       `gorm:"column:club_profile_rejection_reason;type:text" json:"club_profile_rejection_reason,omitempty"`

	// Audit
	ClubProfileCreatedAt time.Time `gorm:"column:club_profile_created_at;autoCreateTime" json:"club_profile_created_at"`
	ClubProfileUpdatedAt time.Time `gorm:"column:club_profile_updated_at;autoUpdateTime" json:"club_profile_updated_at"`
}

func (ClubProfileModel) TableName() string { return "club_profiles" }
