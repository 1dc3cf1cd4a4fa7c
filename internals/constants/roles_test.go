package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed(RoleAdminKoni, RoleAdminKoni))
	assert.True(t, RoleAllowed(RoleAdminCabor, RoleAdminKoni, RoleAdminCabor))
	assert.False(t, RoleAllowed(RoleAdminClub, RoleAdminKoni, RoleAdminCabor))
	assert.False(t, RoleAllowed(Role("SUPER_ADMIN"), AllRoles...))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("ADMIN_KONI"))
	assert.True(t, IsValidRole("ADMIN_CLUB"))
	assert.False(t, IsValidRole("admin_koni"))
	assert.False(t, IsValidRole(""))
}
