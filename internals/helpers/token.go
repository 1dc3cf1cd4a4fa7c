package helper

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
)

// Alfabet token tanpa karakter yang gampang ketukar saat dibaca/diketik:
// O vs 0, I vs 1 sengaja dibuang.
const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const tokenSuffixLen = 4

// GenerateToken menghasilkan kode pendek "PREFIX-XXXX" yang aman dibacakan
// lewat telepon. Collision handling jadi tanggung jawab pemanggil.
func GenerateToken(prefix string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(strings.TrimSpace(prefix)))
	sb.WriteByte('-')

	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < tokenSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand tidak tersedia = fatal
		}
		sb.WriteByte(tokenAlphabet[n.Int64()])
	}
	return sb.String()
}

// ExpiryFromNow menghitung waktu kadaluarsa token dari sekarang.
func ExpiryFromNow(d time.Duration) time.Time {
	return time.Now().Add(d)
}
