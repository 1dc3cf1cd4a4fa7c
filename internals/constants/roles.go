package constants

import "fmt"

// Role adalah enumerasi tertutup peran pengguna.
type Role string

const (
	RoleAdminKoni  Role = "ADMIN_KONI"  // administrator federasi (KONI)
	RoleAdminCabor Role = "ADMIN_CABOR" // administrator cabang olahraga
	RoleAdminClub  Role = "ADMIN_CLUB"  // administrator club
)

var AllRoles = []Role{
	RoleAdminKoni,
	RoleAdminCabor,
	RoleAdminClub,
}

// RoleAllowed memusatkan cek kapabilitas: apakah role pemanggil termasuk
// salah satu role yang diizinkan. Semua handler memakai ini, bukan
// membanding string sendiri-sendiri.
func RoleAllowed(caller Role, allowed ...Role) bool {
	for _, r := range allowed {
		if caller == r {
			return true
		}
	}
	return false
}

func IsValidRole(s string) bool {
	for _, r := range AllRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Template pesan error role
const errOnlyRoleCanAccess = "❌ Hanya %s yang boleh mengakses fitur %s."

func RoleErrorKoni(feature string) string {
	return fmt.Sprintf(errOnlyRoleCanAccess, "Admin KONI", feature)
}

func RoleErrorCabor(feature string) string {
	return fmt.Sprintf(errOnlyRoleCanAccess, "Admin Cabor", feature)
}

func RoleErrorClub(feature string) string {
	return fmt.Sprintf(errOnlyRoleCanAccess, "Admin Club", feature)
}
