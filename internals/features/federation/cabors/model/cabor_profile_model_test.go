package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func dateptr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

/* =========================================================
   ShouldReverify
========================================================= */

func verifiedProfile() CaborProfileModel {
	return CaborProfileModel{
		CaborProfileVerificationStatus: VerificationVerified,
		CaborProfileSKFileURL:          strptr("https://files.example/sk-v1.pdf"),
		CaborProfileSKStartDate:        dateptr(2024, time.January, 1),
		CaborProfileSKEndDate:          dateptr(2026, time.December, 31),
	}
}

func TestShouldReverify_SKFileChanged(t *testing.T) {
	p := verifiedProfile()

	got := p.ShouldReverify("https://files.example/sk-v2.pdf",
		p.CaborProfileSKStartDate, p.CaborProfileSKEndDate)

	assert.True(t, got)
}

func TestShouldReverify_SKDatesChanged(t *testing.T) {
	p := verifiedProfile()

	got := p.ShouldReverify("", p.CaborProfileSKStartDate, dateptr(2027, time.June, 30))

	assert.True(t, got)
}

// Edit field biasa (file kosong = tidak diganti, tanggal sama) tidak boleh
// menjatuhkan status.
func TestShouldReverify_NonTriggerEdit(t *testing.T) {
	p := verifiedProfile()

	got := p.ShouldReverify("", p.CaborProfileSKStartDate, p.CaborProfileSKEndDate)

	assert.False(t, got)
}

// Profil PENDING tidak pernah dipaksa transisi, apa pun yang diedit.
func TestShouldReverify_PendingProfileUntouched(t *testing.T) {
	p := verifiedProfile()
	p.CaborProfileVerificationStatus = VerificationPending

	got := p.ShouldReverify("https://files.example/sk-v2.pdf", nil, nil)

	assert.False(t, got)
}

// Profil REJECTED yang memperbaiki SK balik antri sebagai PENDING.
func TestShouldReverify_RejectedProfileTriggers(t *testing.T) {
	p := verifiedProfile()
	p.CaborProfileVerificationStatus = VerificationRejected

	got := p.ShouldReverify("https://files.example/sk-v2.pdf",
		p.CaborProfileSKStartDate, p.CaborProfileSKEndDate)

	assert.True(t, got)
}

// URL sama persis dengan yang tersimpan = bukan perubahan.
func TestShouldReverify_SameFileURL(t *testing.T) {
	p := verifiedProfile()

	got := p.ShouldReverify(*p.CaborProfileSKFileURL,
		p.CaborProfileSKStartDate, p.CaborProfileSKEndDate)

	assert.False(t, got)
}

// Perbandingan tanggal hanya komponen Y-M-D; beda jam/zona diabaikan.
func TestShouldReverify_DateComparedByDayOnly(t *testing.T) {
	p := verifiedProfile()

	sameDayDifferentClock := time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC)
	got := p.ShouldReverify("", &sameDayDifferentClock, p.CaborProfileSKEndDate)

	assert.False(t, got)
}

func TestShouldReverify_DateCleared(t *testing.T) {
	p := verifiedProfile()

	got := p.ShouldReverify("", p.CaborProfileSKStartDate, nil)

	assert.True(t, got)
}

/* =========================================================
   CanIssueClubToken
========================================================= */

func TestCanIssueClubToken_Verified(t *testing.T) {
	p := verifiedProfile()
	p.CaborProfileADARTFileURL = strptr("https://files.example/adart.pdf")

	assert.NoError(t, p.CanIssueClubToken())
}

func TestCanIssueClubToken_NotVerified(t *testing.T) {
	p := verifiedProfile()
	p.CaborProfileADARTFileURL = strptr("https://files.example/adart.pdf")
	p.CaborProfileVerificationStatus = VerificationPending

	assert.ErrorIs(t, p.CanIssueClubToken(), ErrCaborNotVerified)
}

func TestCanIssueClubToken_MissingDocs(t *testing.T) {
	p := verifiedProfile()
	// AD/ART belum diupload
	assert.ErrorIs(t, p.CanIssueClubToken(), ErrCaborDocsMissing)

	p.CaborProfileADARTFileURL = strptr("")
	assert.ErrorIs(t, p.CanIssueClubToken(), ErrCaborDocsMissing)
}

/* =========================================================
   ClubTokenUsableAt
========================================================= */

func TestClubTokenUsableAt(t *testing.T) {
	now := time.Now()

	p := CaborProfileModel{}
	assert.ErrorIs(t, p.ClubTokenUsableAt(now), ErrClubTokenUnset)

	token := "RENANG-AB23"
	p.CaborProfileClubToken = &token
	assert.ErrorIs(t, p.ClubTokenUsableAt(now), ErrClubTokenExpired)

	past := now.Add(-time.Minute)
	p.CaborProfileClubTokenExpiresAt = &past
	assert.ErrorIs(t, p.ClubTokenUsableAt(now), ErrClubTokenExpired)

	future := now.Add(7 * 24 * time.Hour)
	p.CaborProfileClubTokenExpiresAt = &future
	assert.NoError(t, p.ClubTokenUsableAt(now))
}
