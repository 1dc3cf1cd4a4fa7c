package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleJSON_Roundtrip(t *testing.T) {
	items := []ScheduleItem{
		{Day: "Senin", Start: "16:00", End: "18:00"},
		{Day: "Kamis", Start: "19:00", End: "21:00"},
	}

	raw, err := ScheduleToJSON(items)
	require.NoError(t, err)

	got := ScheduleFromJSON(raw)
	assert.Equal(t, items, got)
}

func TestScheduleJSON_Empty(t *testing.T) {
	raw, err := ScheduleToJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	assert.Nil(t, ScheduleFromJSON(nil))
	assert.Nil(t, ScheduleFromJSON([]byte("bukan json")))
}

// Penolakan tanpa alasan harus gagal di validasi, sebelum ada mutasi status.
func TestRejectCaborRequest_RequiresReason(t *testing.T) {
	v := validator.New()

	assert.Error(t, v.Struct(&RejectCaborRequest{Reason: ""}))
	assert.NoError(t, v.Struct(&RejectCaborRequest{Reason: "Dokumen SK tidak terbaca"}))
}

func TestNormalizeCaborName(t *testing.T) {
	assert.Equal(t, "ANGKAT BESI", NormalizeCaborName("  angkat besi "))
	assert.Equal(t, "RENANG", NormalizeCaborName("Renang"))
}
