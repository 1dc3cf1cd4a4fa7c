package helper

import (
	"errors"

	"github.com/lib/pq"
)

// pgSQLErr dipenuhi oleh error pgx (pgconn.PgError) tanpa perlu import
// driver-nya langsung.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation memeriksa pelanggaran unique constraint Postgres
// (SQLSTATE 23505) secara bertipe, bukan lewat substring pesan.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}

	// koneksi via lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}

	return false
}

// IsForeignKeyViolation memeriksa SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23503" {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return true
	}

	return false
}
