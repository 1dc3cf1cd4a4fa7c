// file: internals/features/federation/invitations/dto/invitation_dto.go
package dto

import (
	"time"

	"konisurabaya_backend/internals/features/federation/invitations/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateInvitationRequest struct {
	// Deskripsi bebas, boleh kosong (mis. "Undangan PSSI Surabaya")
	Description string `json:"description" validate:"omitempty,max=255"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type InvitationResponse struct {
	InvitationID          string    `json:"invitation_id"`
	InvitationToken       string    `json:"invitation_token"`
	InvitationDescription *string   `json:"invitation_description,omitempty"`
	InvitationExpiresAt   time.Time `json:"invitation_expires_at"`
	InvitationIsActive    bool      `json:"invitation_is_active"`
	InvitationCreatedAt   time.Time `json:"invitation_created_at"`
}

func ToInvitationResponse(m *model.KoniInvitationModel) InvitationResponse {
	return InvitationResponse{
		InvitationID:          m.InvitationID.String(),
		InvitationToken:       m.InvitationToken,
		InvitationDescription: m.InvitationDescription,
		InvitationExpiresAt:   m.InvitationExpiresAt,
		InvitationIsActive:    m.InvitationIsActive,
		InvitationCreatedAt:   m.InvitationCreatedAt,
	}
}

// TokenValidationResponse adalah bentuk balikan validasi token undangan KONI.
type TokenValidationResponse struct {
	Valid bool                 `json:"valid"`
	Error string               `json:"error,omitempty"`
	Data  *TokenValidationData `json:"data,omitempty"`
}

type TokenValidationData struct {
	InvitationID string    `json:"invitation_id"`
	Description  *string   `json:"description,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}
