// file: internals/features/federation/cabors/model/cabor_profile_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VerificationStatus adalah enumerasi tertutup status verifikasi profil.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

var (
	ErrClubTokenUnset   = errors.New("token belum dibuat")
	ErrClubTokenExpired = errors.New("token sudah kadaluarsa")

	ErrCaborNotVerified = errors.New("akun Cabor Anda belum diverifikasi oleh Admin KONI")
	ErrCaborDocsMissing = errors.New("dokumen SK Kepengurusan dan AD/ART belum lengkap")
)

// CaborProfileModel merepresentasikan tabel cabor_profiles.
// Dimiliki 1:1 oleh user ber-role ADMIN_CABOR.
type CaborProfileModel struct {
	// PK
	CaborProfileID uuid.UUID `gorm:"column:cabor_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cabor_profile_id"`

	// Relasi
	CaborProfileUserID        uuid.UUID `gorm:"column:cabor_profile_user_id;type:uuid;uniqueIndex;not null" json:"cabor_profile_user_id"`
	CaborProfileMasterCaborID uuid.UUID `gorm:"column:cabor_profile_master_cabor_id;type:uuid;not null" json:"cabor_profile_master_cabor_id"`
	MasterCabor               *MasterCaborModel `gorm:"foreignKey:CaborProfileMasterCaborID;references:MasterCaborID" json:"master_cabor,omitempty"`

	// Identitas & kontak
	CaborProfileDescription       *string `gorm:"column:cabor_profile_description;type:text" json:"cabor_profile_description,omitempty"`
	CaborProfileSecretariatAddr   *string `gorm:"column:cabor_profile_secretariat_addr;type:text" json:"cabor_profile_secretariat_addr,omitempty"`
	CaborProfileOfficialEmail     *string `gorm:"column:cabor_profile_official_email;type:varchar(100)" json:"cabor_profile_official_email,omitempty"`
	CaborProfilePhone             *string `gorm:"column:cabor_profile_phone;type:varchar(30)" json:"cabor_profile_phone,omitempty"`

	// Sosial media
	CaborProfileFacebookURL  *string `gorm:"column:cabor_profile_facebook_url;type:text" json:"cabor_profile_facebook_url,omitempty"`
	CaborProfileInstagramURL *string `gorm:"column:cabor_profile_instagram_url;type:text" json:"cabor_profile_instagram_url,omitempty"`
	CaborProfileWebsiteURL   *string `gorm:"column:cabor_profile_website_url;type:text" json:"cabor_profile_website_url,omitempty"`
	CaborProfileYoutubeURL   *string `gorm:"column:cabor_profile_youtube_url;type:text" json:"cabor_profile_youtube_url,omitempty"`

	// Operasional
	CaborProfileOrgStructure     *string        `gorm:"column:cabor_profile_org_structure;type:text" json:"cabor_profile_org_structure,omitempty"`
	CaborProfileFacilities       *string        `gorm:"column:cabor_profile_facilities;type:text" json:"cabor_profile_facilities,omitempty"`
	CaborProfileTrainingSchedule datatypes.JSON `gorm:"column:cabor_profile_training_schedule;type:jsonb" json:"cabor_profile_training_schedule,omitempty"`
	CaborProfileTrainingLocation *string        `gorm:"column:cabor_profile_training_location;type:text" json:"cabor_profile_training_location,omitempty"`
	CaborProfileDevProgram       *string        `gorm:"column:cabor_profile_dev_program;type:text" json:"cabor_profile_dev_program,omitempty"`
	CaborProfileAchievements     *string        `gorm:"column:cabor_profile_achievements;type:text" json:"cabor_profile_achievements,omitempty"`

	// SDM
	CaborProfileTotalReferees       int `gorm:"column:cabor_profile_total_referees;not null;default:0" json:"cabor_profile_total_referees"`
	CaborProfileTotalCoaches        int `gorm:"column:cabor_profile_total_coaches;not null;default:0" json:"cabor_profile_total_coaches"`
	CaborProfileTotalAthletesManual int `gorm:"column:cabor_profile_total_athletes_manual;not null;default:0" json:"cabor_profile_total_athletes_manual"`

	// Dokumen legal: SK Kepengurusan + masa berlaku
	CaborProfileSKFileURL   *string    `gorm:"column:cabor_profile_sk_file_url;type:text" json:"cabor_profile_sk_file_url,omitempty"`
	CaborProfileSKFileName  *string    `gorm:"column:cabor_profile_sk_file_name;type:text" json:"cabor_profile_sk_file_name,omitempty"`
	CaborProfileSKStartDate *time.Time `gorm:"column:cabor_profile_sk_start_date;type:date" json:"cabor_profile_sk_start_date,omitempty"`
	CaborProfileSKEndDate   *time.Time `gorm:"column:cabor_profile_sk_end_date;type:date" json:"cabor_profile_sk_end_date,omitempty"`

	// Dokumen legal: AD/ART
	CaborProfileADARTFileURL  *string `gorm:"column:cabor_profile_ad_art_file_url;type:text" json:"cabor_profile_ad_art_file_url,omitempty"`
	CaborProfileADARTFileName *string `gorm:"column:cabor_profile_ad_art_file_name;type:text" json:"cabor_profile_ad_art_file_name,omitempty"`

	// Status & Verifikasi
	CaborProfileVerificationStatus VerificationStatus `gorm:"column:cabor_profile_verification_status;type:varchar(10);not null;default:'PENDING'" json:"cabor_profile_verification_status"`
	CaborProfileRejectionReason    *string            `gorm:"column:cabor_profile_rejection_reason;type:text" json:"cabor_profile_rejection_reason,omitempty"`

	// Token pendaftaran club (multi-use, embedded di profil)
	CaborProfileClubToken          *string    `gorm:"column:cabor_profile_club_token;type:varchar(120);uniqueIndex" json:"cabor_profile_club_token,omitempty"`
	CaborProfileClubTokenExpiresAt *time.Time `gorm:"column:cabor_profile_club_token_expires_at" json:"cabor_profile_club_token_expires_at,omitempty"`

	// Audit
	CaborProfileCreatedAt time.Time `gorm:"column:cabor_profile_created_at;autoCreateTime" json:"cabor_profile_created_at"`
	CaborProfileUpdatedAt time.Time `gorm:"column:cabor_profile_updated_at;autoUpdateTime" json:"cabor_profile_updated_at"`
}

func (CaborProfileModel) TableName() string { return "cabor_profiles" }

// ClubTokenUsableAt: token club valid iff terisi && now <= expires_at.
// Tidak ada state "consumed" — token dipakai berulang sampai kadaluarsa
// atau di-regenerate.
func (p *CaborProfileModel) ClubTokenUsableAt(now time.Time) error {
	if p.CaborProfileClubToken == nil || *p.CaborProfileClubToken == "" {
		return ErrClubTokenUnset
	}
	if p.CaborProfileClubTokenExpiresAt == nil || now.After(*p.CaborProfileClubTokenExpiresAt) {
		return ErrClubTokenExpired
	}
	return nil
}

// CanIssueClubToken: prasyarat penerbitan token club — profil harus sudah
// VERIFIED dan kedua dokumen legal sudah diupload.
func (p *CaborProfileModel) CanIssueClubToken() error {
	if p.CaborProfileVerificationStatus != VerificationVerified {
		return ErrCaborNotVerified
	}
	if !hasValue(p.CaborProfileSKFileURL) || !hasValue(p.CaborProfileADARTFileURL) {
		return ErrCaborDocsMissing
	}
	return nil
}

// ShouldReverify memutuskan apakah edit profil memaksa status balik ke
// PENDING. Trigger-nya sengaja sempit: hanya perubahan file SK atau tanggal
// masa berlakunya. Profil yang masih PENDING tidak dipaksa transisi.
func (p *CaborProfileModel) ShouldReverify(newSKFileURL string, newStart, newEnd *time.Time) bool {
	if p.CaborProfileVerificationStatus != VerificationVerified &&
		p.CaborProfileVerificationStatus != VerificationRejected {
		return false
	}

	fileChanged := newSKFileURL != "" && (p.CaborProfileSKFileURL == nil || newSKFileURL != *p.CaborProfileSKFileURL)
	startChanged := !sameDate(p.CaborProfileSKStartDate, newStart)
	endChanged := !sameDate(p.CaborProfileSKEndDate, newEnd)

	return fileChanged || startChanged || endChanged
}

// sameDate membandingkan hanya komponen tanggal (YYYY-MM-DD), mengikuti
// perbandingan string tanggal di alur aslinya.
func sameDate(a, b *time.Time) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
