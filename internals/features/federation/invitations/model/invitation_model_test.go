package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsableAt_Active(t *testing.T) {
	now := time.Now()
	inv := KoniInvitationModel{
		InvitationIsActive:  true,
		InvitationExpiresAt: now.Add(time.Hour),
	}

	assert.NoError(t, inv.UsableAt(now))
}

func TestUsableAt_Expired(t *testing.T) {
	now := time.Now()
	inv := KoniInvitationModel{
		InvitationIsActive:  true,
		InvitationExpiresAt: now.Add(-time.Minute),
	}

	assert.ErrorIs(t, inv.UsableAt(now), ErrTokenExpired)
}

func TestUsableAt_Consumed(t *testing.T) {
	now := time.Now()
	inv := KoniInvitationModel{
		InvitationIsActive:  false,
		InvitationExpiresAt: now.Add(time.Hour),
	}

	assert.ErrorIs(t, inv.UsableAt(now), ErrTokenConsumed)
}

// Token yang sudah dipakai DAN kadaluarsa harus dilaporkan "sudah digunakan",
// bukan "kadaluarsa".
func TestUsableAt_ConsumedWinsOverExpired(t *testing.T) {
	now := time.Now()
	inv := KoniInvitationModel{
		InvitationIsActive:  false,
		InvitationExpiresAt: now.Add(-time.Hour),
	}

	assert.ErrorIs(t, inv.UsableAt(now), ErrTokenConsumed)
}

func TestUsableAt_ExactExpiryStillUsable(t *testing.T) {
	now := time.Now()
	inv := KoniInvitationModel{
		InvitationIsActive:  true,
		InvitationExpiresAt: now,
	}

	// now == expires_at: belum lewat, masih boleh.
	assert.NoError(t, inv.UsableAt(now))
}

func TestConsume_Terminal(t *testing.T) {
	inv := KoniInvitationModel{
		InvitationIsActive:  true,
		InvitationExpiresAt: time.Now().Add(time.Hour),
	}

	inv.Consume()
	require.False(t, inv.InvitationIsActive)
	assert.ErrorIs(t, inv.UsableAt(time.Now()), ErrTokenConsumed)
}
