// file: internals/features/federation/invitations/model/invitation_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Error token dibedakan per kasus supaya pesan ke user juga beda
// ("sudah digunakan" bukan "kadaluarsa").
var (
	ErrTokenConsumed = errors.New("token sudah digunakan")
	ErrTokenExpired  = errors.New("token sudah kadaluarsa")
)

// KoniInvitationModel merepresentasikan tabel koni_invitations.
// Token undangan KONI: sekali pakai, berlaku 24 jam, tidak pernah dihapus.
type KoniInvitationModel struct {
	// PK
	InvitationID uuid.UUID `gorm:"column:invitation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invitation_id"`

	InvitationToken       string  `gorm:"column:invitation_token;type:varchar(30);uniqueIndex;not null" json:"invitation_token"`
	InvitationDescription *string `gorm:"column:invitation_description;type:text" json:"invitation_description,omitempty"`

	InvitationExpiresAt time.Time `gorm:"column:invitation_expires_at;not null" json:"invitation_expires_at"`
	InvitationIsActive  bool      `gorm:"column:invitation_is_active;not null;default:true" json:"invitation_is_active"`

	InvitationCreatedBy uuid.UUID `gorm:"column:invitation_created_by;type:uuid;not null" json:"invitation_created_by"`
	InvitationCreatedAt time.Time `gorm:"column:invitation_created_at;autoCreateTime" json:"invitation_created_at"`
}

func (KoniInvitationModel) TableName() string { return "koni_invitations" }

// UsableAt memutuskan apakah token masih bisa dipakai pada waktu tertentu.
// Invariant: usable iff is_active && now <= expires_at. Urutan cek mengikuti
// perilaku asli: token yang sudah dikonsumsi dilaporkan "sudah digunakan"
// walaupun sekaligus kadaluarsa.
func (inv *KoniInvitationModel) UsableAt(now time.Time) error {
	if !inv.InvitationIsActive {
		return ErrTokenConsumed
	}
	if now.After(inv.InvitationExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// Consume menandai token terpakai. Terminal: tidak ada jalan balik ke aktif.
func (inv *KoniInvitationModel) Consume() {
	inv.InvitationIsActive = false
}
