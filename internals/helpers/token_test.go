package helper

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_Format(t *testing.T) {
	re := regexp.MustCompile(`^KONI-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}$`)

	for i := 0; i < 200; i++ {
		token := GenerateToken("KONI")
		require.Regexp(t, re, token)
	}
}

func TestGenerateToken_NoAmbiguousChars(t *testing.T) {
	for i := 0; i < 200; i++ {
		token := GenerateToken("RENANG")
		suffix := strings.TrimPrefix(token, "RENANG-")
		assert.NotContains(t, suffix, "O")
		assert.NotContains(t, suffix, "0")
		assert.NotContains(t, suffix, "I")
		assert.NotContains(t, suffix, "1")
	}
}

func TestGenerateToken_NormalizesPrefix(t *testing.T) {
	token := GenerateToken("  koni ")
	assert.True(t, strings.HasPrefix(token, "KONI-"), "prefix harus di-trim dan uppercase: %s", token)
}

func TestExpiryFromNow(t *testing.T) {
	before := time.Now().Add(24 * time.Hour)
	got := ExpiryFromNow(24 * time.Hour)
	after := time.Now().Add(24 * time.Hour)

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
