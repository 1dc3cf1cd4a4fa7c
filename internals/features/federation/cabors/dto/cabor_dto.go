// file: internals/features/federation/cabors/dto/cabor_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"konisurabaya_backend/internals/features/federation/cabors/model"
)

/* =========================================================
   JADWAL LATIHAN — list {day,start,end} bertipe di boundary,
   diserialisasi ke JSONB hanya di tepi persistence.
========================================================= */

type ScheduleItem struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"` // "HH:MM"
	End   string `json:"end" validate:"required"`   // "HH:MM"
}

func ScheduleToJSON(items []ScheduleItem) (datatypes.JSON, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func ScheduleFromJSON(raw datatypes.JSON) []ScheduleItem {
	if len(raw) == 0 {
		return nil
	}
	var items []ScheduleItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

/* =========================================================
   REQUEST DTO
========================================================= */

// RegisterCaborAdminRequest: pendaftaran admin cabor via token undangan KONI.
// MasterCaborID boleh "NEW" + NewCaborName untuk mengusulkan cabor baru.
type RegisterCaborAdminRequest struct {
	Token           string `json:"token" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Username        string `json:"username" validate:"omitempty,min=3,max=50"`

	MasterCaborID string `json:"master_cabor_id" validate:"required"`
	NewCaborName  string `json:"new_cabor_name" validate:"omitempty,min=2,max=100"`
}

// UpdateCaborProfileRequest: edit profil oleh admin cabor. Field dokumen SK
// yang kosong berarti "tidak diganti" (file lama dipertahankan).
type UpdateCaborProfileRequest struct {
	Description     *string `json:"description"`
	SecretariatAddr *string `json:"secretariat_addr"`
	OfficialEmail   *string `json:"official_email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`

	FacebookURL  *string `json:"facebook_url"`
	InstagramURL *string `json:"instagram_url"`
	WebsiteURL   *string `json:"website_url"`
	YoutubeURL   *string `json:"youtube_url"`

	OrgStructure     *string        `json:"org_structure"`
	Facilities       *string        `json:"facilities"`
	TrainingSchedule []ScheduleItem `json:"training_schedule" validate:"omitempty,dive"`
	TrainingLocation *string        `json:"training_location"`
	DevProgram       *string        `json:"dev_program"`
	Achievements     *string        `json:"achievements"`

	TotalReferees       int `json:"total_referees" validate:"min=0"`
	TotalCoaches        int `json:"total_coaches" validate:"min=0"`
	TotalAthletesManual int `json:"total_athletes_manual" validate:"min=0"`

	// Dokumen legal (URL/nama dari layanan upload eksternal, opaque di sini)
	SKFileURL   string  `json:"sk_file_url"`
	SKFileName  string  `json:"sk_file_name"`
	SKStartDate *string `json:"sk_start_date" validate:"omitempty,datetime=2006-01-02"`
	SKEndDate   *string `json:"sk_end_date" validate:"omitempty,datetime=2006-01-02"`

	ADARTFileURL  string `json:"ad_art_file_url"`
	ADARTFileName string `json:"ad_art_file_name"`
}

type RejectCaborRequest struct {
	Reason string `json:"reason" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type CaborProfileResponse struct {
	CaborProfileID string `json:"cabor_profile_id"`
	MasterCaborID  string `json:"master_cabor_id"`
	CaborName      string `json:"cabor_name,omitempty"`

	Description     *string `json:"description,omitempty"`
	SecretariatAddr *string `json:"secretariat_addr,omitempty"`
	OfficialEmail   *string `json:"official_email,omitempty"`
	Phone           *string `json:"phone,omitempty"`

	FacebookURL  *string `json:"facebook_url,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	WebsiteURL   *string `json:"website_url,omitempty"`
	YoutubeURL   *string `json:"youtube_url,omitempty"`

	OrgStructure     *string        `json:"org_structure,omitempty"`
	Facilities       *string        `json:"facilities,omitempty"`
	TrainingSchedule []ScheduleItem `json:"training_schedule,omitempty"`
	TrainingLocation *string        `json:"training_location,omitempty"`
	DevProgram       *string        `json:"dev_program,omitempty"`
	Achievements     *string        `json:"achievements,omitempty"`

	TotalReferees       int `json:"total_referees"`
	TotalCoaches        int `json:"total_coaches"`
	TotalAthletesManual int `json:"total_athletes_manual"`

	SKFileURL   *string `json:"sk_file_url,omitempty"`
	SKFileName  *string `json:"sk_file_name,omitempty"`
	SKStartDate *string `json:"sk_start_date,omitempty"`
	SKEndDate   *string `json:"sk_end_date,omitempty"`

	ADARTFileURL  *string `json:"ad_art_file_url,omitempty"`
	ADARTFileName *string `json:"ad_art_file_name,omitempty"`

	VerificationStatus string  `json:"verification_status"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`

	ClubToken          *string    `json:"club_token,omitempty"`
	ClubTokenExpiresAt *time.Time `json:"club_token_expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCaborProfileResponse(m *model.CaborProfileModel) CaborProfileResponse {
	resp := CaborProfileResponse{
		CaborProfileID: m.CaborProfileID.String(),
		MasterCaborID:  m.CaborProfileMasterCaborID.String(),

		Description:     m.CaborProfileDescription,
		SecretariatAddr: m.CaborProfileSecretariatAddr,
		OfficialEmail:   m.CaborProfileOfficialEmail,
		Phone:           m.CaborProfilePhone,

		FacebookURL:  m.CaborProfileFacebookURL,
		InstagramURL: m.CaborProfileInstagramURL,
		WebsiteURL:   m.CaborProfileWebsiteURL,
		YoutubeURL:   m.CaborProfileYoutubeURL,

		OrgStructure:     m.CaborProfileOrgStructure,
		Facilities:       m.CaborProfileFacilities,
		TrainingSchedule: ScheduleFromJSON(m.CaborProfileTrainingSchedule),
		TrainingLocation: m.CaborProfileTrainingLocation,
		DevProgram:       m.CaborProfileDevProgram,
		Achievements:     m.CaborProfileAchievements,

		TotalReferees:       m.CaborProfileTotalReferees,
		TotalCoaches:        m.CaborProfileTotalCoaches,
		TotalAthletesManual: m.CaborProfileTotalAthletesManual,

		SKFileURL:  m.CaborProfileSKFileURL,
		SKFileName: m.CaborProfileSKFileName,

		ADARTFileURL:  m.CaborProfileADARTFileURL,
		ADARTFileName: m.CaborProfileADARTFileName,

		VerificationStatus: string(m.CaborProfileVerificationStatus),
		RejectionReason:    m.CaborProfileRejectionReason,

		ClubToken:          m.CaborProfileClubToken,
		ClubTokenExpiresAt: m.CaborProfileClubTokenExpiresAt,

		CreatedAt: m.CaborProfileCreatedAt,
		UpdatedAt: m.CaborProfileUpdatedAt,
	}

	if m.MasterCabor != nil {
		resp.CaborName = m.MasterCabor.MasterCaborName
	}
	if m.CaborProfileSKStartDate != nil {
		s := m.CaborProfileSKStartDate.Format("2006-01-02")
		resp.SKStartDate = &s
	}
	if m.CaborProfileSKEndDate != nil {
		s := m.CaborProfileSKEndDate.Format("2006-01-02")
		resp.SKEndDate = &s
	}
	return resp
}

// ClubTokenValidationResponse adalah bentuk balikan validasi token club.
type ClubTokenValidationResponse struct {
	Valid          bool   `json:"valid"`
	CaborName      string `json:"cabor_name,omitempty"`
	CaborProfileID string `json:"cabor_profile_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// NormalizeCaborName: bentuk kanonik nama cabor (trim + UPPERCASE),
// dipakai juga untuk dedupe case-insensitive.
func NormalizeCaborName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
