// file: internals/features/clubs/dto/club_dto.go
package dto

import (
	"time"

	"konisurabaya_backend/internals/features/clubs/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// RegisterClubAdminRequest: pendaftaran admin club via token cabor.
// Cabor induk TIDAK dikirim client — selalu di-resolve dari token.
type RegisterClubAdminRequest struct {
	Token           string `json:"token" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	ClubName        string `json:"club_name" validate:"required,min=2,max=100"`
}

// ClubOnboardingRequest: form kelengkapan organisasi club.
type ClubOnboardingRequest struct {
	ChairName        string `json:"chair_name" validate:"required,min=3"`
	SecretaryName    string `json:"secretary_name" validate:"required,min=3"`
	BasecampAddr     string `json:"basecamp_addr" validate:"required,min=3"`
	TrainingSchedule string `json:"training_schedule" validate:"required,min=3"`
	TrainingLocation string `json:"training_location" validate:"required,min=3"`
}

type RejectClubRequest struct {
	Reason string `json:"reason" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ClubProfileResponse struct {
	ClubProfileID  string `json:"club_profile_id"`
	CaborProfileID string `json:"cabor_profile_id"`
	ClubName       string `json:"club_name"`

	ChairName        *string `json:"chair_name,omitempty"`
	SecretaryName    *string `json:"secretary_name,omitempty"`
	BasecampAddr     *string `json:"basecamp_addr,omitempty"`
	TrainingSchedule *string `json:"training_schedule,omitempty"`
	TrainingLocation *string `json:"training_location,omitempty"`

	IsOnboarded        bool    `json:"is_onboarded"`
	VerificationStatus string  `json:"verification_status"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToClubProfileResponse(m *model.ClubProfileModel) ClubProfileResponse {
	return ClubProfileResponse{
		ClubProfileID:  m.ClubProfileID.String(),
		CaborProfileID: m.ClubProfileCaborProfileID.String(),
		ClubName:       m.ClubProfileName,

		ChairName:        m.ClubProfileChairName,
		SecretaryName:    m.ClubProfileSecretaryName,
		BasecampAddr:     m.ClubProfileBasecampAddr,
		TrainingSchedule: m.ClubProfileTrainingSchedule,
		TrainingLocation: m.ClubProfileTrainingLocation,

		IsOnboarded:        m.ClubProfileIsOnboarded,
		VerificationStatus: string(m.ClubProfileVerificationStatus),
		RejectionReason:    m.ClubProfileRejectionReason,

		CreatedAt: m.ClubProfileCreatedAt,
		UpdatedAt: m.ClubProfileUpdatedAt,
	}
}
